// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "encoding/json"

// Content is one conversation turn: a producer role and its ordered parts.
type Content struct {
	// Role is the producer of the content. Empty when the turn has no role.
	Role string `json:"role,omitempty"`

	// Parts holds the ordered message fragments of this turn.
	Parts []*Part `json:"parts,omitempty"`
}

// Part is a single message fragment. Data holds exactly one payload variant;
// a nil Data means no payload was set.
type Part struct {
	Data isPart_Data `json:"-"`

	// Thought marks the part as model reasoning rather than user-visible output.
	Thought bool `json:"thought,omitempty"`
}

// GetData returns the payload discriminant, or nil when no payload was set.
func (p *Part) GetData() isPart_Data {
	if p == nil {
		return nil
	}
	return p.Data
}

// isPart_Data is the Part payload discriminant.
type isPart_Data interface {
	isPart_Data()
}

// Part_Text wraps a plain text payload.
type Part_Text struct {
	Text string `json:"text"`
}

// Part_FunctionCall wraps a function call requested by the model.
type Part_FunctionCall struct {
	FunctionCall *FunctionCall `json:"functionCall"`
}

// Part_FunctionResponse wraps the result of an executed function call.
type Part_FunctionResponse struct {
	FunctionResponse *FunctionResponse `json:"functionResponse"`
}

// Part_InlineData wraps an inline binary blob.
type Part_InlineData struct {
	InlineData *Blob `json:"inlineData"`
}

func (*Part_Text) isPart_Data()             {}
func (*Part_FunctionCall) isPart_Data()     {}
func (*Part_FunctionResponse) isPart_Data() {}
func (*Part_InlineData) isPart_Data()       {}

// partJSON is the flattened wire form of a Part: the oneof payload appears
// as whichever member field is present. Text is a pointer so an empty text
// payload still serializes, distinguishing it from no payload at all.
type partJSON struct {
	Text             *string           `json:"text,omitempty"`
	FunctionCall     *FunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *FunctionResponse `json:"functionResponse,omitempty"`
	InlineData       *Blob             `json:"inlineData,omitempty"`
	Thought          bool              `json:"thought,omitempty"`
}

// MarshalJSON flattens the payload variant into its named member field.
func (p *Part) MarshalJSON() ([]byte, error) {
	flat := partJSON{
		Thought: p.Thought,
	}

	switch data := p.Data.(type) {
	case *Part_Text:
		flat.Text = &data.Text
	case *Part_FunctionCall:
		flat.FunctionCall = data.FunctionCall
	case *Part_FunctionResponse:
		flat.FunctionResponse = data.FunctionResponse
	case *Part_InlineData:
		flat.InlineData = data.InlineData
	}

	return json.Marshal(flat)
}

// UnmarshalJSON restores the payload variant from whichever member field is
// present. When several are present, the first in declaration order wins.
func (p *Part) UnmarshalJSON(data []byte) error {
	var flat partJSON
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}

	p.Thought = flat.Thought

	switch {
	case flat.Text != nil:
		p.Data = &Part_Text{Text: *flat.Text}
	case flat.FunctionCall != nil:
		p.Data = &Part_FunctionCall{FunctionCall: flat.FunctionCall}
	case flat.FunctionResponse != nil:
		p.Data = &Part_FunctionResponse{FunctionResponse: flat.FunctionResponse}
	case flat.InlineData != nil:
		p.Data = &Part_InlineData{InlineData: flat.InlineData}
	default:
		p.Data = nil
	}

	return nil
}

// FunctionCall is a model-requested invocation of a declared function.
type FunctionCall struct {
	// ID correlates the call with its FunctionResponse.
	ID string `json:"id,omitempty"`

	Name string `json:"name,omitempty"`

	Args map[string]any `json:"args,omitempty"`
}

// FunctionResponse is the result of a function call, keyed back by ID.
type FunctionResponse struct {
	ID string `json:"id,omitempty"`

	Name string `json:"name,omitempty"`

	Response map[string]any `json:"response,omitempty"`
}

// Blob is raw media carried inline. Data is base64 text, the form in which
// bytes cross the transport boundary.
type Blob struct {
	MimeType string `json:"mimeType,omitempty"`

	Data string `json:"data,omitempty"`
}
