package dto

type ObjectResponse struct {
	ObjectID       string  `json:"object_id"`
	Name           string  `json:"name"`
	DiameterMeters float64 `json:"diameter_meters"`
	Color          string  `json:"color"`
	ScaleLabel     string  `json:"scale_label"`
}

type ListObjectsResponse struct {
	Objects []ObjectResponse `json:"objects"`
}
