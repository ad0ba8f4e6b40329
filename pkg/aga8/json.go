package aga8

import (
	"encoding/json"
	"fmt"
)

// Request is the JSON input of CalculateJSON.
type Request struct {
	Composition map[string]float64 `json:"composition"`
	Pressure    float64            `json:"pressure_kpa"`
	Temperature float64            `json:"temperature_k"`
	Full        bool               `json:"full,omitempty"`
}

// CalculateJSON is the JSON entry point shared by the browser bridge and the
// aga8 json command. It accepts a JSON-encoded Request and returns a JSON-encoded Wire,
// or WireFull when the request sets full.
func (c *Calculator) CalculateJSON(input string) (string, error) {
	var req Request
	if err := json.Unmarshal([]byte(input), &req); err != nil {
		return "", fmt.Errorf("aga8: invalid input JSON: %w", err)
	}

	res, err := c.Calculate(req.Composition, req.Pressure, req.Temperature)
	if err != nil {
		return "", err
	}

	var v any = res.Wire()
	if req.Full {
		v = res.WireFull()
	}
	out, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("aga8: marshaling output: %w", err)
	}
	return string(out), nil
}
