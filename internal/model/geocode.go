package model

type AddressSuggestion struct {
	DisplayName string  `json:"display_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	PlaceID     string  `json:"place_id"`
}

type SearchAddressRequest struct {
	Query string `json:"query"`
}

type SearchAddressResponse struct {
	Suggestions []AddressSuggestion `json:"suggestions"`
}
