//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/pkg/ec"
)

var table *curves.Table

func main() {
	c := make(chan struct{})

	var err error
	table, err = curves.NewTable(nil)
	if err != nil {
		panic(err)
	}
	fmt.Println("Go ECMath WASM Initialized")

	js.Global().Set("GoECMath", map[string]interface{}{
		"Curves":         js.FuncOf(Curves),
		"ScalarBaseMult": js.FuncOf(ScalarBaseMult),
		"ScalarMult":     js.FuncOf(ScalarMult),
		"DecodePoint":    js.FuncOf(DecodePoint),
	})

	<-c
}

type pointOutput struct {
	Curve      string `json:"curve"`
	Infinity   bool   `json:"infinity"`
	X          string `json:"x,omitempty"`
	Y          string `json:"y,omitempty"`
	Compressed string `json:"compressed"`
}

func point(name string, p *ec.Point) interface{} {
	out := pointOutput{Curve: name, Infinity: p.IsInfinity(), Compressed: hex.EncodeToString(p.Encoded(true))}
	if !p.IsInfinity() {
		p = p.Normalize()
		out.X, out.Y = p.AffineX().ToBig().Text(16), p.AffineY().ToBig().Text(16)
	}
	b, err := json.Marshal(out)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func parseScalar(s string) (*big.Int, error) {
	k, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex scalar %q", s)
	}
	return k, nil
}

// Curves returns a JSON array of the supported curve names.
func Curves(this js.Value, args []js.Value) interface{} {
	b, _ := json.Marshal(table.Names())
	return string(b)
}

// ScalarBaseMult computes k*G.
// Arguments:
// 0: curve name
// 1: hex scalar
// Returns:
// JSON point or an "error: ..." string
func ScalarBaseMult(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (curve, scalar)"
	}
	nc, err := table.ByName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	k, err := parseScalar(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return point(nc.Name, nc.G.Multiply(k))
}

// ScalarMult computes k*P for an encoded point P.
// Arguments:
// 0: curve name
// 1: hex point encoding
// 2: hex scalar
func ScalarMult(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (curve, point, scalar)"
	}
	nc, err := table.ByName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	enc, err := hex.DecodeString(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: invalid hex point: %v", err)
	}
	p, err := nc.Curve.DecodePoint(enc)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	k, err := parseScalar(args[2].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return point(nc.Name, p.Multiply(k))
}

// DecodePoint validates an encoded point and returns its affine form.
// Arguments:
// 0: curve name
// 1: hex point encoding
func DecodePoint(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (curve, point)"
	}
	nc, err := table.ByName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	enc, err := hex.DecodeString(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: invalid hex point: %v", err)
	}
	p, err := nc.Curve.DecodePoint(enc)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return point(nc.Name, p)
}
