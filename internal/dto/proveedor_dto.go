package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProveedorRequest struct {
	Nombre    string  `json:"nombre"    validate:"required,min=2"`
	NIT       *string `json:"nit"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProveedorResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	NIT       *string `json:"nit"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
	Activo    bool    `json:"activo"`
}
