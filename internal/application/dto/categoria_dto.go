package dto

// CategoriaResponse fila de GET /api/categorias.
type CategoriaResponse struct {
	IDCategoria int64  `json:"id_categoria"`
	Nombre      string `json:"nombre_categoria"`
	Descripcion string `json:"descripcion"`
	Activo      bool   `json:"activo"`
}

// GuardarCategoriaRequest cuerpo de creación/actualización de categoría.
type GuardarCategoriaRequest struct {
	Nombre      string `json:"nombre_categoria"`
	Descripcion string `json:"descripcion"`
}

// MarcaResponse fila de GET /api/marcas.
type MarcaResponse struct {
	IDMarca   int64  `json:"id_marca"`
	Nombre    string `json:"nombre_marca"`
	Contacto  string `json:"contacto,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	Activo    bool   `json:"activo"`
}

// GuardarMarcaRequest cuerpo de creación/actualización de marca.
type GuardarMarcaRequest struct {
	Nombre    string `json:"nombre_marca"`
	Contacto  string `json:"contacto"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Direccion string `json:"direccion"`
}
