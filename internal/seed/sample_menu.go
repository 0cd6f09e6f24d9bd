package seed

import "la-cave/internal/model"

func item(name, desc string, price float64, category string, rating float64, popular bool, dietary ...string) model.MenuItem {
	m := model.NewMenuItem()
	m.Name = name
	m.Description = desc
	m.Price = price
	m.Category = category
	m.Rating = rating
	m.IsPopular = popular
	if len(dietary) > 0 {
		m.Dietary = dietary
	}
	return m
}

// SampleMenu 初始菜單
var SampleMenu = []model.MenuItem{
	item("Burrata & Heirloom Tomatoes", "Fresh burrata cheese with seasonal heirloom tomatoes, basil oil, and aged balsamic", 18, "appetizers", 4.8, false, "vegetarian"),
	item("Foie Gras Torchon", "Terrine of foie gras with Sauternes gelée and brioche", 22, "appetizers", 4.9, false),
	item("Carpaccio di Beef", "Thinly sliced raw beef with caper berries, shaved Parmigiano-Reggiano, and truffle oil", 20, "appetizers", 4.7, false),
	item("Risotto al Tartufo", "Creamy Arborio risotto with black truffle, Parmigiano-Reggiano, and butter", 42, "mains", 4.9, true, "vegetarian"),
	item("Coq au Vin", "Classic French chicken braised in Burgundy wine, mushrooms, and pearl onions", 38, "mains", 4.8, true),
	item("Ossobuco Milanese", "Braised veal shanks with gremolata and saffron risotto", 45, "mains", 5.0, true),
	item("Dover Sole Meunière", "Whole Dover sole pan-fried and finished with brown butter and lemon", 48, "mains", 4.9, false),
	item("Spaghetti alla Carbonara", "Authentic Roman pasta with Guanciale, egg yolk, and Pecorino Romano", 28, "mains", 4.7, false),
	item("Tiramisu", "Classic Italian dessert with mascarpone, espresso, and cocoa", 12, "desserts", 4.8, false, "vegetarian"),
	item("Chocolate Soufflé", "Dark chocolate soufflé with Grand Marnier sauce", 14, "desserts", 4.9, false, "vegetarian"),
	item("Panna Cotta", "Silky panna cotta with fresh berries and berry coulis", 11, "desserts", 4.6, false, "vegetarian"),
}
