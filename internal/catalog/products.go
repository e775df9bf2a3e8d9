package catalog

import "github.com/snackscan/backend/internal/domain"

// vendingProducts is the built-in reference dataset of products commonly
// stocked in US vending machines. Aliases cover the spellings and
// abbreviations that show up in detected label text.
var vendingProducts = []domain.Product{
	// Candy & chocolate
	{
		ID: "snickers-chocolate-bar", Name: "Snickers Chocolate Bar",
		Category: domain.CategoryCandy, Popularity: 95,
		Description: "Americas #1 chocolate bar - 50 million consumers annually",
		Aliases:     []string{"snickers", "snickers bar"},
	},
	{
		ID: "mms-milk-chocolate", Name: "M&Ms Milk Chocolate",
		Category: domain.CategoryCandy, Popularity: 94,
		Description: "Available in multiple flavors: peanut butter, plain milk chocolate, almond",
		Aliases:     []string{"m&m", "mm", "m&ms", "mnm"},
	},
	{
		ID: "reeses-peanut-butter-cups", Name: "Reeses Peanut Butter Cups",
		Category: domain.CategoryCandy, Popularity: 92,
		Description: "40+ million people consume annually",
		Aliases:     []string{"reeses", "reese's", "reeses cups", "peanut butter cups"},
	},
	{
		ID: "kit-kat-wafer-bar", Name: "Kit Kat Wafer Bar",
		Category: domain.CategoryCandy, Popularity: 86,
		Description: "Take a break, have a Kit Kat",
		Aliases:     []string{"kit kat", "kitkat", "kit-kat"},
	},
	{
		ID: "hersheys-milk-chocolate-bar", Name: "Hersheys Milk Chocolate Bar",
		Category: domain.CategoryCandy, Popularity: 84,
		Description: "Classic American chocolate bar since 1900",
		Aliases:     []string{"hershey", "hersheys", "hershey bar"},
	},
	{
		ID: "twix-caramel-cookie-bar", Name: "Twix Caramel Cookie Bar",
		Category: domain.CategoryCandy, Popularity: 83,
		Description: "Crunchy cookie, creamy caramel, milk chocolate",
		Aliases:     []string{"twix", "twix bar"},
	},
	{
		ID: "milky-way-chocolate-bar", Name: "Milky Way Chocolate Bar",
		Category: domain.CategoryCandy, Popularity: 79,
		Aliases:  []string{"milky way", "milkyway"},
	},
	{
		ID: "skittles-original", Name: "Skittles Original",
		Category: domain.CategoryCandy, Popularity: 81,
		Description: "Taste the rainbow",
		Aliases:     []string{"skittles"},
	},

	// Chips & salty snacks
	{
		ID: "doritos-nacho-cheese", Name: "Doritos Nacho Cheese",
		Category: domain.CategoryChips, Popularity: 90,
		Description: "Americas most addictive chip - pairs well with Coke/Pepsi",
		Aliases:     []string{"doritos", "doritos nacho", "nacho cheese doritos"},
	},
	{
		ID: "lays-classic-potato-chips", Name: "Lays Classic Potato Chips",
		Category: domain.CategoryChips, Popularity: 89,
		Description: "Yellow bag classic crispy chips",
		Aliases:     []string{"lays", "lay's", "lays classic", "potato chips"},
	},
	{
		ID: "cheetos-crunchy", Name: "Cheetos Crunchy",
		Category: domain.CategoryChips, Popularity: 87,
		Description: "Best-selling cheese puff in the US",
		Aliases:     []string{"cheetos", "cheetos crunchy"},
	},
	{
		ID: "pringles-original", Name: "Pringles Original",
		Category: domain.CategoryChips, Popularity: 78,
		Aliases:  []string{"pringles"},
	},
	{
		ID: "fritos-original-corn-chips", Name: "Fritos Original Corn Chips",
		Category: domain.CategoryChips, Popularity: 74,
		Aliases:  []string{"fritos", "corn chips"},
	},
	{
		ID: "sun-chips-original", Name: "Sun Chips Original",
		Category: domain.CategoryChips, Popularity: 72,
		Description: "Whole grain multigrain snack chips",
		Aliases:     []string{"sun chips", "sunchips"},
	},

	// Cookies & crackers
	{
		ID: "oreo-chocolate-sandwich-cookies", Name: "Oreo Chocolate Sandwich Cookies",
		Category: domain.CategoryCookies, Popularity: 88,
		Description: "Worlds best-known cookie brand, popular with teens",
		Aliases:     []string{"oreo", "oreos", "oreo cookies"},
	},
	{
		ID: "famous-amos-cookies", Name: "Famous Amos Chocolate Chip Cookies",
		Category: domain.CategoryCookies, Popularity: 70,
		Aliases:  []string{"famous amos", "chocolate chip cookies"},
	},
	{
		ID: "cheez-it-original-crackers", Name: "Cheez-It Original Crackers",
		Category: domain.CategoryCrackers, Popularity: 80,
		Description: "Baked cheese crackers in the red box",
		Aliases:     []string{"cheez it", "cheezit", "cheez-it", "cheese crackers"},
	},
	{
		ID: "ritz-crackers", Name: "Ritz Crackers",
		Category: domain.CategoryCrackers, Popularity: 73,
		Aliases:  []string{"ritz", "ritz crackers"},
	},

	// Breakfast & snacks
	{
		ID: "pop-tarts-frosted-strawberry", Name: "Pop-Tarts Frosted Strawberry",
		Category: domain.CategoryBreakfast, Popularity: 85,
		Description: "Popular flavors: strawberry, blueberry, brown sugar cinnamon",
		Aliases:     []string{"pop tart", "poptart", "pop-tart"},
	},
	{
		ID: "rice-krispies-treats", Name: "Rice Krispies Treats",
		Category: domain.CategorySnacks, Popularity: 76,
		Aliases:  []string{"rice krispies", "krispies treat"},
	},

	// Beverages - sodas
	{
		ID: "coca-cola-classic", Name: "Coca-Cola Classic",
		Category: domain.CategoryBeverages, Popularity: 98,
		Description: "Must-have - pairs perfectly with Doritos",
		Aliases:     []string{"coca cola", "coke", "coca-cola", "classic coke"},
	},
	{
		ID: "diet-coke", Name: "Diet Coke",
		Category: domain.CategoryBeverages, Popularity: 95,
		Aliases:  []string{"diet coke", "diet coca cola"},
	},
	{
		ID: "pepsi-cola", Name: "Pepsi Cola",
		Category: domain.CategoryBeverages, Popularity: 94,
		Description: "Must-have alongside Coca-Cola",
		Aliases:     []string{"pepsi", "pepsi cola"},
	},
	{
		ID: "diet-pepsi", Name: "Diet Pepsi",
		Category: domain.CategoryBeverages, Popularity: 92,
		Aliases:  []string{"diet pepsi"},
	},
	{
		ID: "mountain-dew", Name: "Mountain Dew",
		Category: domain.CategoryBeverages, Popularity: 90,
		Aliases:  []string{"mountain dew", "mtn dew"},
	},
	{
		ID: "dr-pepper", Name: "Dr Pepper",
		Category: domain.CategoryBeverages, Popularity: 87,
		Aliases:  []string{"dr pepper", "dr. pepper"},
	},
	{
		ID: "sprite-lemon-lime-soda", Name: "Sprite Lemon-Lime Soda",
		Category: domain.CategoryBeverages, Popularity: 86,
		Aliases:  []string{"sprite"},
	},
	{
		ID: "fanta-orange-soda", Name: "Fanta Orange Soda",
		Category: domain.CategoryBeverages, Popularity: 85,
		Aliases:  []string{"fanta", "fanta orange"},
	},

	// Energy & coffee
	{
		ID: "red-bull-energy-drink", Name: "Red Bull Energy Drink",
		Category: domain.CategoryEnergy, Popularity: 84,
		Description: "Top-selling energy drink worldwide",
		Aliases:     []string{"red bull", "redbull"},
	},
	{
		ID: "monster-energy-drink", Name: "Monster Energy Drink",
		Category: domain.CategoryEnergy, Popularity: 82,
		Aliases:  []string{"monster", "monster energy"},
	},
	{
		ID: "starbucks-frappuccino", Name: "Starbucks Frappuccino Mocha",
		Category: domain.CategoryCoffee, Popularity: 78,
		Description: "Bottled coffee drink",
		Aliases:     []string{"frappuccino", "starbucks", "starbucks coffee"},
	},

	// Water, sports & healthy
	{
		ID: "dasani-bottled-water", Name: "Dasani Bottled Water",
		Category: domain.CategoryHealthy, Popularity: 89,
		Description: "Popular brands: Dasani, Aquafina, Evian",
		Aliases:     []string{"water", "bottled water", "dasani"},
	},
	{
		ID: "aquafina-bottled-water", Name: "Aquafina Bottled Water",
		Category: domain.CategoryHealthy, Popularity: 88,
		Aliases:  []string{"aquafina", "aquafina water"},
	},
	{
		ID: "gatorade-sports-drink", Name: "Gatorade Sports Drink",
		Category: domain.CategorySports, Popularity: 87,
		Description: "72% market share - Cool Blue, Lemon-Lime, Fruit Punch most popular",
		Aliases:     []string{"gatorade"},
	},
	{
		ID: "vitaminwater", Name: "Vitaminwater",
		Category: domain.CategorySports, Popularity: 71,
		Aliases:  []string{"vitamin water", "vitaminwater"},
	},
	{
		ID: "nature-valley-granola-bar", Name: "Nature Valley Granola Bar",
		Category: domain.CategoryHealthy, Popularity: 80,
		Description: "Healthy snack with oats, honey, fruit, nuts",
		Aliases:     []string{"granola bar", "nature valley"},
	},
	{
		ID: "clif-energy-bar", Name: "Clif Energy Bar",
		Category: domain.CategoryHealthy, Popularity: 83,
		Description: "Organic energy bars for health-conscious consumers",
		Aliases:     []string{"clif bar", "clifbar", "cliff bar"},
	},
	{
		ID: "planters-roasted-peanuts", Name: "Planters Roasted Peanuts",
		Category: domain.CategoryNuts, Popularity: 77,
		Aliases:  []string{"planters", "peanuts", "planters peanuts"},
	},
	{
		ID: "wrigleys-spearmint-gum", Name: "Wrigleys Spearmint Gum",
		Category: domain.CategoryOther, Popularity: 65,
		Aliases:  []string{"wrigleys", "spearmint gum", "chewing gum"},
	},
}
