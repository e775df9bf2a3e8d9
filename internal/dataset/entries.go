package dataset

import "github.com/snackscan/backend/internal/domain"

// entries is the bundled last-resort nutrition dataset. Values are
// approximate label values for the standard vending serving. Health scores
// are not stored; the scorer derives them at lookup time.
var entries = []domain.NutritionFacts{
	// Beverages - sodas
	{Name: "Coca-Cola Classic", ServingSize: "12 fl oz (355ml)", Calories: 140, Carbs: 39, Sugar: 39, Sodium: 45},
	{Name: "Diet Coke", ServingSize: "12 fl oz (355ml)", Sodium: 40},
	{Name: "Pepsi Cola", ServingSize: "12 fl oz (355ml)", Calories: 150, Carbs: 41, Sugar: 41, Sodium: 30},
	{Name: "Diet Pepsi", ServingSize: "12 fl oz (355ml)", Sodium: 35},
	{Name: "Mountain Dew", ServingSize: "12 fl oz (355ml)", Calories: 170, Carbs: 46, Sugar: 46, Sodium: 60},
	{Name: "Dr Pepper", ServingSize: "12 fl oz (355ml)", Calories: 150, Carbs: 40, Sugar: 40, Sodium: 55},
	{Name: "Sprite Lemon-Lime Soda", ServingSize: "12 fl oz (355ml)", Calories: 140, Carbs: 38, Sugar: 38, Sodium: 65},
	{Name: "Fanta Orange Soda", ServingSize: "12 fl oz (355ml)", Calories: 160, Carbs: 44, Sugar: 44, Sodium: 55},

	// Candy & chocolate
	{Name: "Snickers Chocolate Bar", ServingSize: "1.86 oz (52.7g)", Calories: 250, Protein: 4, Carbs: 33, Fat: 12, Fiber: 1, Sugar: 27, Sodium: 120},
	{Name: "M&Ms Milk Chocolate", ServingSize: "1.69 oz (47.9g)", Calories: 240, Protein: 2, Carbs: 34, Fat: 10, Fiber: 1, Sugar: 31, Sodium: 15},
	{Name: "Reeses Peanut Butter Cups", ServingSize: "1.5 oz (42g)", Calories: 210, Protein: 5, Carbs: 24, Fat: 13, Fiber: 2, Sugar: 21, Sodium: 135},
	{Name: "Kit Kat Wafer Bar", ServingSize: "1.5 oz (42g)", Calories: 210, Protein: 3, Carbs: 27, Fat: 11, Fiber: 1, Sugar: 22, Sodium: 16},
	{Name: "Twix Caramel Cookie Bar", ServingSize: "1.79 oz (50.7g)", Calories: 250, Protein: 2, Carbs: 34, Fat: 12, Fiber: 1, Sugar: 24, Sodium: 100},
	{Name: "Hersheys Milk Chocolate Bar", ServingSize: "1.55 oz (43g)", Calories: 220, Protein: 3, Carbs: 26, Fat: 13, Fiber: 1, Sugar: 24, Sodium: 35},
	{Name: "Milky Way Chocolate Bar", ServingSize: "1.84 oz (52.2g)", Calories: 240, Protein: 2, Carbs: 37, Fat: 9, Fiber: 1, Sugar: 31, Sodium: 75},
	{Name: "Skittles Original", ServingSize: "2.17 oz (61.5g)", Calories: 250, Carbs: 56, Fat: 2.5, Sugar: 46, Sodium: 20},

	// Chips & salty snacks
	{Name: "Lays Classic Potato Chips", ServingSize: "1 oz (28g)", Calories: 160, Protein: 2, Carbs: 15, Fat: 10, Fiber: 1, Sodium: 170},
	{Name: "Doritos Nacho Cheese", ServingSize: "1 oz (28g)", Calories: 150, Protein: 2, Carbs: 18, Fat: 8, Fiber: 1, Sugar: 1, Sodium: 210},
	{Name: "Cheetos Crunchy", ServingSize: "1 oz (28g)", Calories: 160, Protein: 2, Carbs: 13, Fat: 10, Fiber: 1, Sugar: 1, Sodium: 250},
	{Name: "Pringles Original", ServingSize: "1 oz (28g)", Calories: 150, Protein: 1, Carbs: 16, Fat: 9, Fiber: 1, Sodium: 150},
	{Name: "Fritos Original Corn Chips", ServingSize: "1 oz (28g)", Calories: 160, Protein: 2, Carbs: 16, Fat: 10, Fiber: 1, Sodium: 170},
	{Name: "Sun Chips Original", ServingSize: "1 oz (28g)", Calories: 140, Protein: 2, Carbs: 19, Fat: 6, Fiber: 2, Sugar: 2, Sodium: 110},

	// Cookies & crackers
	{Name: "Oreo Chocolate Sandwich Cookies", ServingSize: "3 cookies (34g)", Calories: 160, Protein: 1, Carbs: 25, Fat: 7, Fiber: 1, Sugar: 14, Sodium: 135},
	{Name: "Cheez-It Original Crackers", ServingSize: "1 oz (28g)", Calories: 150, Protein: 3, Carbs: 17, Fat: 8, Fiber: 1, Sodium: 230},
	{Name: "Ritz Crackers", ServingSize: "5 crackers (16g)", Calories: 80, Protein: 1, Carbs: 10, Fat: 4.5, Sugar: 1, Sodium: 105},

	// Breakfast & snacks
	{Name: "Pop-Tarts Frosted Strawberry", ServingSize: "1 pastry (52g)", Calories: 200, Protein: 2, Carbs: 38, Fat: 4.5, Fiber: 1, Sugar: 16, Sodium: 170},
	{Name: "Rice Krispies Treats", ServingSize: "1 bar (22g)", Calories: 90, Protein: 1, Carbs: 17, Fat: 2.5, Sugar: 8, Sodium: 105},

	// Energy & coffee
	{Name: "Red Bull Energy Drink", ServingSize: "8.4 fl oz (250ml)", Calories: 110, Protein: 1, Carbs: 28, Sugar: 27, Sodium: 105},
	{Name: "Monster Energy Drink", ServingSize: "16 fl oz (473ml)", Calories: 210, Carbs: 54, Sugar: 54, Sodium: 370},
	{Name: "Starbucks Frappuccino Mocha", ServingSize: "13.7 fl oz (405ml)", Calories: 290, Protein: 9, Carbs: 50, Fat: 5, Sugar: 45, Sodium: 160},

	// Water, sports & healthy
	{Name: "Dasani Bottled Water", ServingSize: "16.9 fl oz (500ml)"},
	{Name: "Aquafina Bottled Water", ServingSize: "16.9 fl oz (500ml)"},
	{Name: "Gatorade Sports Drink", ServingSize: "12 fl oz (355ml)", Calories: 80, Carbs: 21, Sugar: 21, Sodium: 160},
	{Name: "Vitaminwater", ServingSize: "20 fl oz (591ml)", Calories: 100, Carbs: 26, Sugar: 26},
	{Name: "Nature Valley Granola Bar", ServingSize: "1 bar (42g)", Calories: 190, Protein: 4, Carbs: 29, Fat: 7, Fiber: 3, Sugar: 11, Sodium: 160},
	{Name: "Clif Energy Bar", ServingSize: "1 bar (68g)", Calories: 250, Protein: 9, Carbs: 44, Fat: 5, Fiber: 5, Sugar: 21, Sodium: 200},
	{Name: "Planters Roasted Peanuts", ServingSize: "1 oz (28g)", Calories: 170, Protein: 7, Carbs: 5, Fat: 14, Fiber: 2, Sugar: 1, Sodium: 115},
	{Name: "Wrigleys Spearmint Gum", ServingSize: "1 stick (2.7g)", Calories: 10, Carbs: 2, Sugar: 2},
}
