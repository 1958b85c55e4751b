package entity

// Item representa un artículo del catálogo (barang) con su unidad de medida.
// El nombre es único; un ítem puede existir sin asientos en el libro.
type Item struct {
	ID   int64
	Name string
	Unit string // Kg, Liter, Pcs, ...
}
