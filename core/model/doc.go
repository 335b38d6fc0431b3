// Package model defines the capability shared by every request and response
// model: construction from a plain mapping and flattening back to one.
//
// Concrete types opt in by implementing Model, usually with the Decode and
// Flatten helpers:
//
//	type Point struct {
//		X int `json:"x"`
//		Y int `json:"y" validate:"gte=0"`
//	}
//
//	func (p *Point) FromMap(m map[string]any) error { return model.Decode(m, p) }
//	func (p *Point) ToMap() map[string]any          { return model.Flatten(p) }
//
// For all-scalar fields the conversion round-trips:
//
//	p, _ := model.New[Point](map[string]any{"x": 1, "y": 2})
//	p.ToMap() // map[string]any{"x": 1, "y": 2}
package model
