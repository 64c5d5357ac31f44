package dto

import (
	"time"

	"github.com/allisson/stegotext/internal/stego/domain"
)

// EncodeResponse represents the result of an encode request.
type EncodeResponse struct {
	Stego           string `json:"stego"`
	BitCount        int    `json:"bit_count"`
	Overflow        int    `json:"overflow"`
	StrippedMarkers int    `json:"stripped_markers"`
}

// MapEncodeOutputToResponse converts a domain encode output to an API response.
func MapEncodeOutputToResponse(output *domain.EncodeOutput) EncodeResponse {
	return EncodeResponse{
		Stego:           output.Stego,
		BitCount:        output.BitCount,
		Overflow:        output.Overflow,
		StrippedMarkers: output.StrippedMarkers,
	}
}

// DecodeResponse represents the result of a decode request.
type DecodeResponse struct {
	Secret string `json:"secret"`
}

// InspectResponse represents a marker inspection report in API responses.
type InspectResponse struct {
	domain.InspectionReport
	HasPayload bool `json:"has_payload"`
}

// MapInspectionReportToResponse converts a domain report to an API response.
func MapInspectionReportToResponse(report *domain.InspectionReport) InspectResponse {
	return InspectResponse{
		InspectionReport: *report,
		HasPayload:       report.HasPayload(),
	}
}

// KeyResponse represents a stored key in API responses. Key material is never included.
type KeyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Sealed    bool      `json:"sealed"`
	CreatedAt time.Time `json:"created_at"`
}

// MapStoredKeyToResponse converts a domain stored key to an API response.
func MapStoredKeyToResponse(key *domain.StoredKey) KeyResponse {
	return KeyResponse{
		ID:        key.ID.String(),
		Name:      key.Name,
		Sealed:    key.Sealed,
		CreatedAt: key.CreatedAt,
	}
}

// CreateKeyResponse is returned once when a key is created. It is the only
// response that carries the plaintext dynamic key.
type CreateKeyResponse struct {
	KeyResponse
	DynamicKey string `json:"dynamic_key"`
}

// MapCreatedKeyToResponse converts a newly created key to an API response.
func MapCreatedKeyToResponse(storedKey *domain.StoredKey, key domain.Key) CreateKeyResponse {
	return CreateKeyResponse{
		KeyResponse: MapStoredKeyToResponse(storedKey),
		DynamicKey:  key.String(),
	}
}

// ListKeysResponse represents a paginated list of stored keys in API responses.
type ListKeysResponse struct {
	Data []KeyResponse `json:"data"`
}

// MapStoredKeysToListResponse converts a slice of stored keys to a list response.
func MapStoredKeysToListResponse(keys []*domain.StoredKey) ListKeysResponse {
	data := make([]KeyResponse, 0, len(keys))
	for _, k := range keys {
		data = append(data, MapStoredKeyToResponse(k))
	}

	return ListKeysResponse{
		Data: data,
	}
}
