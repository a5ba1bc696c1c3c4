// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"fmt"
)

// Item is a tracked object inside a storage.
type Item struct {
	// CodeID is unique within a storage and is used as the lookup and
	// delete key.
	CodeID string `json:"code_id"`

	// ImageBase64 is the base64-encoded raster image of the item code.
	ImageBase64 string `json:"image_base64"`

	// Name is the item label shown in lists.
	Name string `json:"name"`

	// Amount is the non-negative quantity of the item.
	Amount int `json:"amount"`

	// Description is an optional free-form text.
	Description *string `json:"description"`

	// DateAdded is an opaque display-only timestamp produced by the server.
	// It is never parsed or compared by the client.
	DateAdded string `json:"date_added"`
}

// Image decodes ImageBase64. Both padded and unpadded standard encodings are
// accepted.
func (i Item) Image() ([]byte, error) {
	if i.ImageBase64 == "" {
		return nil, nil
	}

	data, err := base64.StdEncoding.DecodeString(i.ImageBase64)
	if err == nil {
		return data, nil
	}

	data, rawErr := base64.RawStdEncoding.DecodeString(i.ImageBase64)
	if rawErr != nil {
		return nil, fmt.Errorf("decode item image: %w", err)
	}
	return data, nil
}

// ItemRequest is the body of the create-item call.
type ItemRequest struct {
	Name        string  `json:"name"`
	Amount      int     `json:"amount"`
	Description *string `json:"description,omitempty"`
}

// ItemUpdateRequest is the body of the item update call. Only non-nil fields
// are changed on the server.
type ItemUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Amount      *int    `json:"amount,omitempty"`
	Description *string `json:"description,omitempty"`
}
