// Package enrich resuelve referencias entre colecciones en tiempo de lectura
// (joins de solo lectura). El resultado es derivado, nunca se persiste, y la
// resolución jamás falla: una referencia rota degrada a una etiqueta fija.
package enrich

import "github.com/tu-usuario/fox-gestion/internal/domain/repository"

// ReferenceResolver resuelve el nombre visible de un registro referenciado en
// otra colección. ok es false cuando la referencia no existe o la colección
// destino no está disponible.
type ReferenceResolver interface {
	DisplayName(id string) (string, bool)
}

type resolverFunc func(id string) (string, bool)

func (f resolverFunc) DisplayName(id string) (string, bool) { return f(id) }

// Terceros construye un resolver de nombres de terceros.
func Terceros(repo repository.TerceroRepository) ReferenceResolver {
	return resolverFunc(func(id string) (string, bool) {
		t, err := repo.GetByID(id)
		if err != nil || t == nil {
			return "", false
		}
		return t.Nombre, true
	})
}

// Marcas construye un resolver de nombres de marcas.
func Marcas(repo repository.MarcaRepository) ReferenceResolver {
	return resolverFunc(func(id string) (string, bool) {
		m, err := repo.GetByID(id)
		if err != nil || m == nil {
			return "", false
		}
		return m.Nombre, true
	})
}

// Categorias construye un resolver de nombres de categorías.
func Categorias(repo repository.CategoriaRepository) ReferenceResolver {
	return resolverFunc(func(id string) (string, bool) {
		c, err := repo.GetByID(id)
		if err != nil || c == nil {
			return "", false
		}
		return c.Nombre, true
	})
}

// Series construye un resolver de nombres de series. Si la serie no tiene
// nombre se usa su código.
func Series(repo repository.SerieRepository) ReferenceResolver {
	return resolverFunc(func(id string) (string, bool) {
		s, err := repo.GetByID(id)
		if err != nil || s == nil {
			return "", false
		}
		if s.Nombre != "" {
			return s.Nombre, true
		}
		return s.Codigo, true
	})
}

// Productos construye un resolver de nombres de productos.
func Productos(repo repository.ProductoRepository) ReferenceResolver {
	return resolverFunc(func(id string) (string, bool) {
		p, err := repo.GetByID(id)
		if err != nil || p == nil {
			return "", false
		}
		return p.Nombre, true
	})
}
