// Package htmldoc exporta el inventario como HTML compatible con Word (.doc).
package htmldoc

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/pkg/money"
)

var _ ports.Renderer = (*Renderer)(nil)

const tableStyle = `body{font-family:Calibri,Arial,sans-serif;font-size:11pt}
table{border-collapse:collapse;width:100%}
th{background:#2F5597;color:#fff}
th,td{border:1px solid #999;padding:4px 6px}
td.num{text-align:right}`

// Renderer arma el documento con etree; Word abre HTML servido como application/msword.
type Renderer struct {
	now func() time.Time
}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer { return &Renderer{now: time.Now} }

func (r *Renderer) ContentType() string { return "application/msword" }

func (r *Renderer) Extension() string { return "doc" }

func (r *Renderer) Render(title string, rows []dto.ExportRow) ([]byte, error) {
	doc := etree.NewDocument()
	html := doc.CreateElement("html")
	html.CreateAttr("xmlns:o", "urn:schemas-microsoft-com:office:office")
	html.CreateAttr("xmlns:w", "urn:schemas-microsoft-com:office:word")

	head := html.CreateElement("head")
	head.CreateElement("meta").CreateAttr("charset", "utf-8")
	head.CreateElement("title").SetText(title)
	head.CreateElement("style").SetText(tableStyle)

	body := html.CreateElement("body")
	body.CreateElement("h1").SetText(title)
	body.CreateElement("p").SetText(fmt.Sprintf("Generado el %s · %d productos",
		r.now().Format("02/01/2006 15:04"), len(rows)))

	table := body.CreateElement("table")
	tr := table.CreateElement("thead").CreateElement("tr")
	for _, h := range dto.ExportHeaders {
		tr.CreateElement("th").SetText(h)
	}
	tbody := table.CreateElement("tbody")
	for _, row := range rows {
		tr := tbody.CreateElement("tr")
		tr.CreateElement("td").SetText(row.Code)
		tr.CreateElement("td").SetText(row.Name)
		tr.CreateElement("td").SetText(row.Category)
		num(tr, money.Format(row.Price))
		num(tr, strconv.Itoa(row.Stock))
		tr.CreateElement("td").SetText(row.WaitingLabel())
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("doc: serializar: %w", err)
	}
	return append([]byte("<!DOCTYPE html>\n"), out...), nil
}

func num(tr *etree.Element, v string) {
	td := tr.CreateElement("td")
	td.CreateAttr("class", "num")
	td.SetText(v)
}
