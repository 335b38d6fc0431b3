package toolserver

import "github.com/dmitrymomot/labkit/core/model"

// ToolSchema describes a tool for discovery.
type ToolSchema struct {
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

func (s *ToolSchema) FromMap(m map[string]any) error { return model.Decode(m, s) }
func (s *ToolSchema) ToMap() map[string]any          { return model.Flatten(s) }

// InvokeRequest is the body of POST /invoke.
type InvokeRequest struct {
	ToolName  string         `json:"tool_name" validate:"required"`
	Arguments map[string]any `json:"arguments"`
}

func (r *InvokeRequest) FromMap(m map[string]any) error { return model.Decode(m, r) }
func (r *InvokeRequest) ToMap() map[string]any          { return model.Flatten(r) }

// InvokeResponse is the body returned by POST /invoke. Failures are reported
// as an "Error..." string in Result.
type InvokeResponse struct {
	Result any `json:"result"`
}

func (r *InvokeResponse) FromMap(m map[string]any) error { return model.Decode(m, r) }
func (r *InvokeResponse) ToMap() map[string]any          { return model.Flatten(r) }

// ExecuteRequest is the body of POST /execute.
type ExecuteRequest struct {
	Name      string         `json:"name" validate:"required"`
	Arguments map[string]any `json:"arguments"`
}

func (r *ExecuteRequest) FromMap(m map[string]any) error { return model.Decode(m, r) }
func (r *ExecuteRequest) ToMap() map[string]any          { return model.Flatten(r) }
