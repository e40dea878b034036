package svg

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/schematic/pkg/graph"
)

// writeSymbol draws a symbol along +x from 0 to length in the current frame.
func writeSymbol(buf *bytes.Buffer, symbol string, length float64) {
	switch symbol {
	case graph.SymbolOpen:
		return
	case graph.SymbolShort:
		line(buf, 0, length)
		return
	}

	body := min(BodyLength, length)
	a := (length - body) / 2
	b := a + body
	c := length / 2

	switch symbol {
	case graph.SymbolResistor:
		line(buf, 0, a)
		fmt.Fprintf(buf, `    <polyline class="symbol" points="%.1f,0`, a)
		step := body / 6
		for i := 0; i < 6; i++ {
			y := 6.0
			if i%2 == 1 {
				y = -6
			}
			fmt.Fprintf(buf, " %.1f,%.1f", a+step*(float64(i)+0.5), y)
		}
		fmt.Fprintf(buf, ` %.1f,0"/>`+"\n", b)
		line(buf, b, length)

	case graph.SymbolCapacitor:
		line(buf, 0, c-3)
		fmt.Fprintf(buf, `    <path class="symbol" d="M%.1f,-10 V10 M%.1f,-10 V10"/>`+"\n", c-3, c+3)
		line(buf, c+3, length)

	case graph.SymbolInductor:
		line(buf, 0, a)
		r := body / 8
		fmt.Fprintf(buf, `    <path class="symbol" d="M%.1f,0`, a)
		for i := 0; i < 4; i++ {
			fmt.Fprintf(buf, " a%.1f,%.1f 0 0 1 %.1f,0", r, r, 2*r)
		}
		buf.WriteString(`"/>` + "\n")
		line(buf, b, length)

	case graph.SymbolVoltage, graph.SymbolVoltageAC, graph.SymbolCurrent, graph.SymbolCurrentAC:
		r := body / 2
		line(buf, 0, c-r)
		fmt.Fprintf(buf, `    <circle class="symbol" cx="%.1f" cy="0" r="%.1f"/>`+"\n", c, r)
		line(buf, c+r, length)
		source(buf, symbol, c, r)

	case graph.SymbolTransformer:
		r := body / 3
		line(buf, 0, c-1.5*r)
		fmt.Fprintf(buf, `    <circle class="symbol" cx="%.1f" cy="0" r="%.1f"/>`+"\n", c-r/2, r)
		fmt.Fprintf(buf, `    <circle class="symbol" cx="%.1f" cy="0" r="%.1f"/>`+"\n", c+r/2, r)
		line(buf, c+1.5*r, length)

	default:
		line(buf, 0, length)
	}
}

// source draws the inner mark of a source circle centred at c.
func source(buf *bytes.Buffer, symbol string, c, r float64) {
	h := r / 2
	switch symbol {
	case graph.SymbolVoltage:
		// + towards the first terminal, - towards the second
		fmt.Fprintf(buf, `    <path class="symbol" d="M%.1f,-3 V3 M%.1f,0 H%.1f M%.1f,-3 V3"/>`+"\n",
			c-h, c-h-3, c-h+3, c+h)
	case graph.SymbolCurrent:
		fmt.Fprintf(buf, `    <path class="symbol" d="M%.1f,0 H%.1f M%.1f,-4 L%.1f,0 L%.1f,4"/>`+"\n",
			c-h, c+h, c+h-4, c+h, c+h-4)
	default:
		fmt.Fprintf(buf, `    <path class="symbol" d="M%.1f,0 q%.1f,-%.1f %.1f,0 t%.1f,0"/>`+"\n",
			c-h, h/2, h, h, h)
	}
}

func line(buf *bytes.Buffer, from, to float64) {
	if to <= from {
		return
	}
	fmt.Fprintf(buf, `    <line class="symbol" x1="%.1f" y1="0" x2="%.1f" y2="0"/>`+"\n", from, to)
}
