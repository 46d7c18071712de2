package enrich

import "github.com/tu-usuario/fox-gestion/internal/domain/entity"

// Etiquetas fijas de degradación. La resolución sigue este orden: referencia
// resuelta -> nombre del destino; referencia rota -> EtiquetaEliminado;
// sin referencia pero con nombre en línea heredado -> ese nombre tal cual;
// nada -> EtiquetaSinReferencia.
const (
	EtiquetaEliminado     = "Desconocido/Eliminado"
	EtiquetaSinReferencia = "N/A"
)

// resolve aplica la política de resolución común a todo campo de referencia.
func resolve(r ReferenceResolver, refID, nombreHeredado string) string {
	if refID != "" {
		if r != nil {
			if nombre, ok := r.DisplayName(refID); ok {
				return nombre
			}
		}
		return EtiquetaEliminado
	}
	if nombreHeredado != "" {
		return nombreHeredado
	}
	return EtiquetaSinReferencia
}

// CobroEnricher agrega el nombre visible del tercero a cada cobro.
type CobroEnricher struct {
	terceros ReferenceResolver
}

// NewCobroEnricher construye el enriquecedor. Un resolver nil significa que
// la colección de terceros no está disponible: toda referencia degrada.
func NewCobroEnricher(terceros ReferenceResolver) *CobroEnricher {
	return &CobroEnricher{terceros: terceros}
}

// CobroEnriquecido es un cobro con su campo derivado. No se persiste.
type CobroEnriquecido struct {
	entity.Cobro
	TerceroNombre string `json:"tercero_nombre"`
}

// Enrich deriva el nombre del tercero de un cobro.
func (e *CobroEnricher) Enrich(c entity.Cobro) CobroEnriquecido {
	return CobroEnriquecido{
		Cobro:         c,
		TerceroNombre: resolve(e.terceros, c.TerceroID, c.Nombre),
	}
}

// EnrichAll deriva el nombre del tercero de cada cobro.
func (e *CobroEnricher) EnrichAll(cobros []entity.Cobro) []CobroEnriquecido {
	out := make([]CobroEnriquecido, 0, len(cobros))
	for _, c := range cobros {
		out = append(out, e.Enrich(c))
	}
	return out
}

// ProductoEnricher agrega los nombres visibles de marca, categoría y serie.
type ProductoEnricher struct {
	marcas     ReferenceResolver
	categorias ReferenceResolver
	series     ReferenceResolver
}

// NewProductoEnricher construye el enriquecedor de productos.
func NewProductoEnricher(marcas, categorias, series ReferenceResolver) *ProductoEnricher {
	return &ProductoEnricher{marcas: marcas, categorias: categorias, series: series}
}

// ProductoEnriquecido es un producto con sus campos derivados. No se persiste.
type ProductoEnriquecido struct {
	entity.Producto
	MarcaNombre     string `json:"marca_nombre"`
	CategoriaNombre string `json:"categoria_nombre"`
	SerieNombre     string `json:"serie_nombre"`
}

// Enrich deriva los nombres de referencia de un producto. El nombre de serie
// en línea de registros antiguos sirve de fallback cuando no hay serie_id.
func (e *ProductoEnricher) Enrich(p entity.Producto) ProductoEnriquecido {
	return ProductoEnriquecido{
		Producto:        p,
		MarcaNombre:     resolve(e.marcas, p.MarcaID, ""),
		CategoriaNombre: resolve(e.categorias, p.CategoriaID, ""),
		SerieNombre:     resolve(e.series, p.SerieID, p.Series),
	}
}

// EnrichAll deriva los nombres de referencia de cada producto.
func (e *ProductoEnricher) EnrichAll(productos []entity.Producto) []ProductoEnriquecido {
	out := make([]ProductoEnriquecido, 0, len(productos))
	for _, p := range productos {
		out = append(out, e.Enrich(p))
	}
	return out
}

// JuegoEnricher agrega el nombre de producto a cada componente de un juego.
type JuegoEnricher struct {
	productos ReferenceResolver
}

// NewJuegoEnricher construye el enriquecedor de juegos.
func NewJuegoEnricher(productos ReferenceResolver) *JuegoEnricher {
	return &JuegoEnricher{productos: productos}
}

// ComponenteEnriquecido es un componente con el nombre del producto resuelto.
type ComponenteEnriquecido struct {
	entity.Componente
	ProductoNombre string `json:"producto_nombre"`
}

// Componentes deriva el nombre de producto de cada componente del juego.
func (e *JuegoEnricher) Componentes(j entity.Juego) []ComponenteEnriquecido {
	out := make([]ComponenteEnriquecido, 0, len(j.Componentes))
	for _, c := range j.Componentes {
		out = append(out, ComponenteEnriquecido{
			Componente:     c,
			ProductoNombre: resolve(e.productos, c.ProductoID, ""),
		})
	}
	return out
}
