package dto

// CreateTerceroRequest datos para registrar un tercero. Nombre es obligatorio;
// DNI, si viene, debe ser único.
type CreateTerceroRequest struct {
	Nombre             string `json:"nombre"`
	DNI                string `json:"dni"`
	DireccionPrincipal string `json:"direccion_principal"`
	EnvioDepartamento  string `json:"envio_departamento"`
	EnvioAgencia       string `json:"envio_agencia"`
	EnvioNotas         string `json:"envio_notas"`
	Telefono           string `json:"telefono"`
	Email              string `json:"email"`
}

// UpdateTerceroRequest actualización parcial: solo los campos no nil cambian.
type UpdateTerceroRequest struct {
	Nombre             *string `json:"nombre"`
	DNI                *string `json:"dni"`
	DireccionPrincipal *string `json:"direccion_principal"`
	EnvioDepartamento  *string `json:"envio_departamento"`
	EnvioAgencia       *string `json:"envio_agencia"`
	EnvioNotas         *string `json:"envio_notas"`
	Telefono           *string `json:"telefono"`
	Email              *string `json:"email"`
}
