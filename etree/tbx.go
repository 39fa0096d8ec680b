// Package etree encodes glossary terms as TermBase eXchange (TBX) documents
// using github.com/beevik/etree.
//
// Each term becomes a conceptEntry with a single Spanish langSec holding two
// termSecs: the formal term, marked as preferred, and the regional
// colloquial term, marked with a colloquial register.
package etree

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
	"github.com/fwojciec/glosario"
)

// Namespace is the TBX v3 namespace.
const Namespace = "urn:iso:std:iso:30042:ed-2"

// Language is the xml:lang of every langSec.
const Language = "es"

// Document builds the TBX document for terms.
func Document(title string, terms []glosario.Term) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	tbx := doc.CreateElement("tbx")
	tbx.CreateAttr("xmlns", Namespace)
	tbx.CreateAttr("type", "TBX-Basic")
	tbx.CreateAttr("style", "dca")
	tbx.CreateAttr("xml:lang", Language)

	source := tbx.CreateElement("tbxHeader").CreateElement("fileDesc").CreateElement("sourceDesc")
	source.CreateElement("p").SetText(title)

	body := tbx.CreateElement("text").CreateElement("body")
	for n, t := range terms {
		entry := body.CreateElement("conceptEntry")
		entry.CreateAttr("id", fmt.Sprintf("c%d", n+1))
		subject := entry.CreateElement("descrip")
		subject.CreateAttr("type", "subjectField")
		subject.SetText(subjectField(t.Domain))

		lang := entry.CreateElement("langSec")
		lang.CreateAttr("xml:lang", Language)
		if t.Definition != "" {
			def := lang.CreateElement("descrip")
			def.CreateAttr("type", "definition")
			def.SetText(t.Definition)
		}

		formal := lang.CreateElement("termSec")
		formal.CreateElement("term").SetText(t.FormalTerm)
		status := formal.CreateElement("termNote")
		status.CreateAttr("type", "administrativeStatus")
		status.SetText("preferredTerm-admn-sts")
		usage := formal.CreateElement("descrip")
		usage.CreateAttr("type", "context")
		usage.SetText(t.UsageExample)

		colloquial := lang.CreateElement("termSec")
		colloquial.CreateElement("term").SetText(t.ColloquialTerm)
		register := colloquial.CreateElement("termNote")
		register.CreateAttr("type", "register")
		register.SetText("colloquialRegister")
	}

	doc.Indent(2)
	return doc
}

// Encode writes the TBX document for terms to w.
func Encode(w io.Writer, title string, terms []glosario.Term) error {
	_, err := Document(title, terms).WriteTo(w)
	return err
}

func subjectField(d glosario.Domain) string {
	if name := d.DisplayName(); name != "" {
		return name
	}
	return string(d)
}
