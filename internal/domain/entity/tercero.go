package entity

// Tercero representa un tercero (cliente o proveedor). Nombre es obligatorio;
// DNI es opcional pero único entre terceros cuando no está vacío.
type Tercero struct {
	ID                 string `json:"id"`
	Nombre             string `json:"nombre"`
	DNI                string `json:"dni"`
	DireccionPrincipal string `json:"direccion_principal"`
	EnvioDepartamento  string `json:"envio_departamento"`
	EnvioAgencia       string `json:"envio_agencia"`
	EnvioNotas         string `json:"envio_notas"`
	Telefono           string `json:"telefono"`
	Email              string `json:"email"`
}
