//go:build js && wasm

// Command wasm exposes the AGA8 calculator to the browser via WebAssembly.
// After loading, it registers a global object:
//
//	aga8Bridge.initWasm()                                  -> Promise<void>
//	aga8Bridge.isReady()                                   -> bool
//	aga8Bridge.calculate(composition, pressureKPa, tempK)  -> {z_factor, gas_density_kg_m3, molar_mass_g_mol, speed_of_sound_m_s}
//
// composition is an object (or its JSON string) of name -> mole fraction.
// Failures return {error, kind} instead of throwing.
package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/ja7ad/aga8/pkg/aga8"
)

func main() {
	bridge := js.Global().Get("Object").New()
	bridge.Set("initWasm", js.FuncOf(initWasm))
	bridge.Set("isReady", js.FuncOf(isReady))
	bridge.Set("calculate", js.FuncOf(calculate))
	js.Global().Set("aga8Bridge", bridge)
	select {} // keep the WASM module alive until the page is closed
}

func initWasm(_ js.Value, _ []js.Value) any {
	executor := js.FuncOf(func(_ js.Value, args []js.Value) any {
		resolve := args[0]
		go func() {
			aga8.Init(nil)
			resolve.Invoke()
		}()
		return nil
	})
	defer executor.Release()
	return js.Global().Get("Promise").New(executor)
}

func isReady(_ js.Value, _ []js.Value) any {
	return aga8.Ready()
}

func calculate(_ js.Value, args []js.Value) any {
	if len(args) < 3 {
		return failure(fmt.Errorf("expected 3 arguments: composition, pressure, temperature"))
	}
	fractions, err := compositionArg(args[0])
	if err != nil {
		return failure(err)
	}
	if args[1].Type() != js.TypeNumber || args[2].Type() != js.TypeNumber {
		return failure(fmt.Errorf("pressure and temperature must be numbers"))
	}

	req, err := json.Marshal(aga8.Request{
		Composition: fractions,
		Pressure:    args[1].Float(),
		Temperature: args[2].Float(),
	})
	if err != nil {
		return failure(err)
	}
	out, err := aga8.CalculateJSON(string(req))
	if err != nil {
		return failure(err)
	}
	return js.Global().Get("JSON").Call("parse", out)
}

func compositionArg(v js.Value) (map[string]float64, error) {
	var raw string
	switch v.Type() {
	case js.TypeString:
		raw = v.String()
	case js.TypeObject:
		raw = js.Global().Get("JSON").Call("stringify", v).String()
	default:
		return nil, fmt.Errorf("%w: composition must be an object", aga8.ErrInvalidComposition)
	}
	var fractions map[string]float64
	if err := json.Unmarshal([]byte(raw), &fractions); err != nil {
		return nil, fmt.Errorf("%w: %v", aga8.ErrInvalidComposition, err)
	}
	return fractions, nil
}

func failure(err error) map[string]any {
	return map[string]any{"error": err.Error(), "kind": aga8.Kind(err).String()}
}
