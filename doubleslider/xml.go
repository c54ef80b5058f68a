package doubleslider

import (
	"math"
	"strconv"

	"github.com/beevik/etree"
)

// ToXMLElement describes the control the way a UPnP service describes a
// state variable: the reachable domain goes in <allowedValueRange>, with a
// <step> of 1 in whole numbers mode.
func (d *DoubleSlider) ToXMLElement() *etree.Element {
	elem := etree.NewElement("doubleSlider")
	elem.CreateAttr("id", d.id.String())
	elem.CreateAttr("enabled", yesNo(d.Enabled()))

	rangeElem := elem.CreateElement("allowedValueRange")
	rangeElem.CreateElement("minimum").SetText(formatValue(d.minValue))
	rangeElem.CreateElement("maximum").SetText(formatValue(d.maxValue))
	if d.wholeNumbers {
		rangeElem.CreateElement("step").SetText("1")
	}

	distElem := elem.CreateElement("allowedDistanceRange")
	distElem.CreateElement("minimum").SetText(formatValue(d.minDistance))
	if d.maxDistance > 0 && !math.IsInf(d.maxDistance, 1) {
		distElem.CreateElement("maximum").SetText(formatValue(d.maxDistance))
	}

	value := elem.CreateElement("value")
	value.CreateElement("minValue").SetText(formatValue(d.lower))
	value.CreateElement("maxValue").SetText(formatValue(d.upper))

	return elem
}

// GenerateEvent builds the property set sent to subscribers after a
// resolution pass.
func (d *DoubleSlider) GenerateEvent() *etree.Element {
	propSet := etree.NewElement("e:propertyset")
	propSet.CreateAttr("xmlns:e", "urn:schemas-upnp-org:event-1-0")

	minProp := propSet.CreateElement("e:property")
	minProp.CreateElement("MinValue").SetText(formatValue(d.lower))

	maxProp := propSet.CreateElement("e:property")
	maxProp.CreateElement("MaxValue").SetText(formatValue(d.upper))

	return propSet
}

// Describe renders ToXMLElement as an indented XML document.
func (d *DoubleSlider) Describe() (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	doc.SetRoot(d.ToXMLElement())
	doc.Indent(2)
	return doc.WriteToString()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
