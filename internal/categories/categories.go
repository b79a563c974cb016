// Package categories holds the static category/subcategory taxonomy the
// budget screens are built on. The data never changes at runtime, so lookup
// maps are built once at package init.
package categories

// Category IDs.
const (
	Housing = iota + 1
	Eating
	Charity
	Transportation
	Insurance
	Savings
	Services
	Health
	Clothing
	Recreation
	Personal
	Debt
)

type Subcategory struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Necessity bool   `json:"necessity"`
}

type Category struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Color         string        `json:"color"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory IDs are namespaced by category (category*100 + ordinal) so they
// stay unique across the whole taxonomy.
func sub(category, n int, name string, necessity bool) Subcategory {
	return Subcategory{ID: category*100 + n, Name: name, Necessity: necessity}
}

var all = []Category{
	{ID: Housing, Name: "Vivienda", Color: "#4CAF50", Subcategories: []Subcategory{
		sub(Housing, 1, "Renta", true),
		sub(Housing, 2, "Hipoteca", true),
		sub(Housing, 3, "Impuestos a la vivienda", true),
		sub(Housing, 4, "Reparaciones y mantenimiento", true),
		sub(Housing, 5, "Costos de asociación", true),
	}},
	{ID: Eating, Name: "Alimentación", Color: "#FF9800", Subcategories: []Subcategory{
		sub(Eating, 1, "Despensa", true),
		sub(Eating, 2, "Restaurantes y otros", false),
	}},
	{ID: Charity, Name: "Caridad", Color: "#9C27B0", Subcategories: []Subcategory{
		sub(Charity, 1, "Impuestos", true),
		sub(Charity, 2, "Donaciones y ofrendas", false),
	}},
	{ID: Transportation, Name: "Transporte", Color: "#2196F3", Subcategories: []Subcategory{
		sub(Transportation, 1, "Gasolina y aceite", true),
		sub(Transportation, 2, "Reparaciones y llantas", true),
		sub(Transportation, 3, "Licencia e impuestos", true),
		sub(Transportation, 4, "Estacionamiento y casetas", true),
		sub(Transportation, 5, "Transporte público y taxis", true),
	}},
	{ID: Insurance, Name: "Seguros", Color: "#03A9F4", Subcategories: []Subcategory{
		sub(Insurance, 1, "Vida", false),
		sub(Insurance, 2, "Gastos médicos", false),
		sub(Insurance, 3, "Casa (inmueble y/o contenidos)", false),
		sub(Insurance, 4, "Auto", false),
		sub(Insurance, 5, "Discapacidad", false),
		sub(Insurance, 6, "Robo", false),
		sub(Insurance, 7, "Cuidado a largo plazo", false),
	}},
	{ID: Savings, Name: "Ahorro", Color: "#00BCD4", Subcategories: []Subcategory{
		sub(Savings, 1, "Fondo de emergencias", false),
		sub(Savings, 2, "Fondo para el retiro", false),
		sub(Savings, 3, "Fondo para la educación", false),
	}},
	{ID: Services, Name: "Servicios", Color: "#607D8B", Subcategories: []Subcategory{
		sub(Services, 1, "Electricidad", true),
		sub(Services, 2, "Gas", true),
		sub(Services, 3, "Agua", true),
		sub(Services, 4, "Recolección de residuos", true),
		sub(Services, 5, "Celular", true),
		sub(Services, 6, "Internet", true),
		sub(Services, 7, "Cable", false),
	}},
	{ID: Health, Name: "Salud", Color: "#E91E63", Subcategories: []Subcategory{
		sub(Health, 1, "Medicamentos", true),
		sub(Health, 2, "Doctor", true),
		sub(Health, 3, "Dentista", true),
		sub(Health, 4, "Oculista", true),
		sub(Health, 5, "Vitaminas", true),
		sub(Health, 6, "Suministros médicos", true),
		sub(Health, 7, "Otros gastos de salud", true),
	}},
	{ID: Clothing, Name: "Vestimenta", Color: "#673AB7", Subcategories: []Subcategory{
		sub(Clothing, 1, "Adultos", true),
		sub(Clothing, 2, "Niños", true),
		sub(Clothing, 3, "Limpieza", true),
	}},
	{ID: Recreation, Name: "Recreación", Color: "#FF5722", Subcategories: []Subcategory{
		sub(Recreation, 1, "Entretenimiento", false),
		sub(Recreation, 2, "Vacaciones", false),
	}},
	{ID: Personal, Name: "Personal", Color: "#795548", Subcategories: []Subcategory{
		sub(Personal, 1, "Cuidado de niños", true),
		sub(Personal, 2, "Artículos de aseo personal", true),
		sub(Personal, 3, "Cosméticos y aseo del cabello", true),
		sub(Personal, 4, "Educación", false),
		sub(Personal, 5, "Libros y utencilios", false),
		sub(Personal, 6, "Pensión alimenticia", false),
		sub(Personal, 7, "Manutención de hijos", false),
		sub(Personal, 8, "Subscripciones", false),
		sub(Personal, 9, "Costos de organización", false),
		sub(Personal, 10, "Regalos", false),
		sub(Personal, 11, "Reemplazo de muebles", false),
		sub(Personal, 12, "Dinero de bolsillo 1", false),
		sub(Personal, 13, "Dinero de bolsillo 2", false),
		sub(Personal, 14, "Suministros para bebé", false),
		sub(Personal, 15, "Suministros para mascotas", false),
		sub(Personal, 16, "Musica y tecnología", false),
		sub(Personal, 17, "Contador", false),
		sub(Personal, 18, "Varios", false),
		sub(Personal, 19, "Otros gastos personales 1", false),
		sub(Personal, 20, "Otros gastos personales 2", false),
	}},
	{ID: Debt, Name: "Deuda", Color: "#F44336", Subcategories: []Subcategory{
		sub(Debt, 1, "Crédito automotriz 1", false),
		sub(Debt, 2, "Crédito automotriz 2", false),
		sub(Debt, 3, "Tarjeta de crédito 1", false),
		sub(Debt, 4, "Tarjeta de crédito 2", false),
		sub(Debt, 5, "Tarjeta de crédito 3", false),
		sub(Debt, 6, "Tarjeta de crédito 4", false),
		sub(Debt, 7, "Tarjeta de crédito 5", false),
		sub(Debt, 8, "Crédito de estudio 1", false),
		sub(Debt, 9, "Crédito de estudio 2", false),
		sub(Debt, 10, "Crédito de estudio 3", false),
		sub(Debt, 11, "Crédito de estudio 4", false),
		sub(Debt, 12, "Crédito personal 1", false),
		sub(Debt, 13, "Crédito personal 2", false),
		sub(Debt, 14, "Otra deuda 1", false),
		sub(Debt, 15, "Otra deuda 2", false),
		sub(Debt, 16, "Otra deuda 3", false),
	}},
}

var (
	byID    = map[int]Category{}
	subByID = map[int]Subcategory{}
	subCat  = map[int]int{} // subcategory ID -> owning category ID
)

func init() {
	for _, c := range all {
		byID[c.ID] = c
		for _, s := range c.Subcategories {
			subByID[s.ID] = s
			subCat[s.ID] = c.ID
		}
	}
}

// All returns the complete taxonomy.
func All() []Category { return all }

// ByID looks up a category.
func ByID(id int) (Category, bool) {
	c, ok := byID[id]
	return c, ok
}

// SubcategoryByID looks up a subcategory anywhere in the taxonomy.
func SubcategoryByID(id int) (Subcategory, bool) {
	s, ok := subByID[id]
	return s, ok
}

// CategoryOf returns the owning category ID for a subcategory.
func CategoryOf(subcategoryID int) (int, bool) {
	c, ok := subCat[subcategoryID]
	return c, ok
}

// SubcategoryNames maps every subcategory ID to its display name.
func SubcategoryNames() map[int]string {
	names := make(map[int]string, len(subByID))
	for id, s := range subByID {
		names[id] = s.Name
	}
	return names
}
