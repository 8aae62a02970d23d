package vinti4net

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"

	"github.com/hugochinchilla79/vinti4net_sdk/models"
)

// RenderForm builds the HTML page that posts a signed request to the
// gateway. The form submits itself on load; a button is offered when
// scripts are disabled.
func RenderForm(p models.PreparedRequest) (string, error) {
	if p.PostURL == "" || p.Fields.Len() == 0 {
		return "", errors.New("vinti4net: render form: request is not signed")
	}

	doc := etree.NewDocument()
	doc.CreateDirective("DOCTYPE html")

	html := doc.CreateElement("html")
	head := html.CreateElement("head")
	head.CreateElement("meta").CreateAttr("charset", "utf-8")
	head.CreateElement("title").SetText("Vinti4Net")

	body := html.CreateElement("body")
	body.CreateAttr("onload", "document.forms[0].submit()")

	form := body.CreateElement("form")
	form.CreateAttr("action", p.PostURL)
	form.CreateAttr("method", "post")
	form.CreateAttr("accept-charset", "utf-8")

	p.Fields.Each(func(name, value string) {
		in := form.CreateElement("input")
		in.CreateAttr("type", "hidden")
		in.CreateAttr("name", name)
		in.CreateAttr("value", value)
	})

	noscript := form.CreateElement("noscript")
	button := noscript.CreateElement("button")
	button.CreateAttr("type", "submit")
	button.SetText("Continue")

	body.CreateElement("p").SetText("Processing the payment...")

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("vinti4net: render form: %w", err)
	}
	return out, nil
}
