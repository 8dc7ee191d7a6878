package http

import "time"

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type createOrderRequest struct {
	ClientID   string  `json:"client_id"`
	Category   string  `json:"category"`
	PriceOffer float64 `json:"price_offer"`
}

type updatePriceRequest struct {
	PriceOffer float64 `json:"price_offer"`
}

type placeOfferRequest struct {
	CleanerID     string  `json:"cleaner_id"`
	PartnerID     string  `json:"partner_id,omitempty"`
	ProposedPrice float64 `json:"proposed_price"`
	Comment       string  `json:"comment,omitempty"`
	Eta           string  `json:"eta"`
}

type acceptOfferRequest struct {
	OfferID string `json:"offer_id"`
}

type cancelOrderRequest struct {
	Actor string `json:"actor"`
}

type acceptDeliveryRequest struct {
	CourierID string `json:"courier_id"`
}

type openOrderResponse struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"client_id"`
	Category     string    `json:"category"`
	PriceOffer   float64   `json:"price_offer"`
	Status       string    `json:"status"`
	TazaIndex    int       `json:"taza_index"`
	Band         string    `json:"band"`
	ProtectionOn bool      `json:"protection_enabled"`
	CreatedAt    time.Time `json:"created_at"`
}

type orderOfferResponse struct {
	ID            string    `json:"id"`
	CleanerID     string    `json:"cleaner_id"`
	PartnerID     string    `json:"partner_id,omitempty"`
	ProposedPrice float64   `json:"proposed_price"`
	Comment       string    `json:"comment,omitempty"`
	Eta           string    `json:"eta"`
	Status        string    `json:"status"`
	Band          string    `json:"band"`
	BandLabel     string    `json:"band_label"`
	Recommended   bool      `json:"recommended"`
	CreatedAt     time.Time `json:"created_at"`
}

type activeDeliveryResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Kind      string    `json:"kind"`
	CourierID string    `json:"courier_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
