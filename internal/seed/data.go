package seed

import (
	creatorsdomain "onlyflans/internal/domain/creators"
	flansdomain "onlyflans/internal/domain/flans"
)

const (
	imageClassic   = "https://images.unsplash.com/photo-1563729784474-d77dbb933a9e?w=600"
	imageChocolate = "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=600"
	imageTropical  = "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=600"
	imageRustic    = "https://images.unsplash.com/photo-1541783245837-1a93e9788abb?w=600"
)

type sampleFlan struct {
	name        string
	description string
	imageURL    string
	flanType    flansdomain.FlanType
	price       string
}

// An empty price marks a free flan.
var sampleFlans = []sampleFlan{
	{"Classic Vanilla Dream", "Creamy traditional Mexican flan with golden caramel sauce that melts in your mouth. The perfect balance of sweet and rich.", imageClassic, flansdomain.FlanTypeVanilla, ""},
	{"Chocolate Caramel Heaven", "Rich dark chocolate flan with salted caramel drizzle. So decadent it should be illegal.", imageChocolate, flansdomain.FlanTypeChocolate, "4.99"},
	{"Coconut Paradise", "Tropical coconut flan with toasted coconut flakes. Close your eyes and taste the beach.", imageTropical, flansdomain.FlanTypeCoconut, ""},
	{"Coffee Delight", "Espresso-infused flan with coffee glaze. The perfect dessert for coffee lovers.", imageClassic, flansdomain.FlanTypeCoffee, "3.99"},
	{"Abuelas Secret Recipe", "This recipe has been passed down for generations. So good it might make you cry.", imageRustic, flansdomain.FlanTypeVanilla, "6.99"},
	{"Salted Caramel Swirl", "Vanilla flan with beautiful salted caramel swirls. Sweet, salty, and absolutely perfect.", imageClassic, flansdomain.FlanTypeVanilla, ""},
	{"Mexican Chocolate Flan", "Traditional Mexican chocolate with cinnamon and spice. A flavor explosion in every bite.", imageChocolate, flansdomain.FlanTypeChocolate, "5.49"},
	{"Tropical Coconut Lime", "Coconut flan with zesty lime twist. Refreshing and light with tropical vibes.", imageTropical, flansdomain.FlanTypeCoconut, ""},
	{"Mocha Madness", "The perfect marriage of coffee and chocolate. For when you cant decide between both.", imageClassic, flansdomain.FlanTypeCoffee, "4.99"},
	{"Bourbon Vanilla Elegance", "Premium bourbon vanilla beans in a silky smooth flan. Pure luxury.", imageRustic, flansdomain.FlanTypeVanilla, "7.99"},
	{"White Chocolate Raspberry", "Creamy white chocolate flan with raspberry coulis. Elegant and delicious.", imageChocolate, flansdomain.FlanTypeChocolate, "5.99"},
	{"Pina Colada Flan", "Coconut and pineapple flan that tastes like vacation in a dessert.", imageTropical, flansdomain.FlanTypeCoconut, ""},
	{"Irish Coffee Flan", "Coffee flan with a hint of Irish cream. Adults only, for obvious reasons.", imageClassic, flansdomain.FlanTypeCoffee, "6.49"},
	{"Orange Blossom Flan", "Delicate orange blossom water infused flan. Light, floral, and unforgettable.", imageRustic, flansdomain.FlanTypeSpecial, "5.99"},
	{"Dulce de Leche Supreme", "Flan swimming in homemade dulce de leche. Not for the faint of heart.", imageClassic, flansdomain.FlanTypeSpecial, "6.99"},
	{"Matcha Green Tea Flan", "Japanese matcha green tea gives this flan a unique and sophisticated flavor.", imageChocolate, flansdomain.FlanTypeSpecial, "5.49"},
	{"Lemon Basil Infusion", "Unexpected but amazing combination of lemon and fresh basil. Refreshing and unique.", imageTropical, flansdomain.FlanTypeSpecial, ""},
	{"Spiced Pumpkin Flan", "All the cozy flavors of pumpkin spice in flan form. Perfect for autumn.", imageClassic, flansdomain.FlanTypeSpecial, "4.99"},
	{"Black Sesame Flan", "Nutty black sesame gives this flan an exotic and beautiful gray color.", imageRustic, flansdomain.FlanTypeSpecial, "5.99"},
	{"Rum Raisin Flan", "Plump rum-soaked raisins throughout a rich vanilla flan. Sophisticated and boozy.", imageChocolate, flansdomain.FlanTypeVanilla, "6.49"},
	{"Honey Lavender Dream", "Local honey and culinary lavender create a floral, delicate dessert experience.", imageTropical, flansdomain.FlanTypeSpecial, ""},
	{"Tiramisu Flan", "The classic Italian dessert reimagined as flan. Coffee, mascarpone, and cocoa magic.", imageClassic, flansdomain.FlanTypeCoffee, "6.99"},
	{"Mexican Wedding Flan", "Extra rich and creamy flan traditionally served at Mexican weddings. Celebration in every bite.", imageRustic, flansdomain.FlanTypeVanilla, "7.49"},
}

type sampleCreator struct {
	name       string
	kind       creatorsdomain.CreatorType
	bio        string
	image      string
	featured   bool
	totalFlans int
	earnings   string
	rate       int
	followers  string
}

var sampleCreators = []sampleCreator{
	{"Gordon Ramsay", creatorsdomain.CreatorTypeChef, `"THIS FLAN IS RAW!...ly amazing when you actually follow my recipe, you donkey!" Known for his temper and perfectly caramelized sugar.`, "https://images.unsplash.com/photo-1577219491135-ce391730fb2c?w=400", true, 12, "8472.50", 98, "2.4M"},
	{"Abuela Maria", creatorsdomain.CreatorTypeGrandma, `90 years young and still making the best flan in Guadalajara. Secret ingredient: love (and a pinch of brandy). "Mijito, you need more caramel!"`, "https://images.unsplash.com/photo-1581579186913-45ac3e6efe93?w=400", true, 8, "3245.80", 100, "450K"},
	{"Nana Rosa", creatorsdomain.CreatorTypeGrandma, `Known as "The Flan Whisperer". Can tell if a flan is perfect just by listening to it jiggle. "A little more vanilla, cariño!"`, "https://images.unsplash.com/photo-1566616213894-2d4e1baee5d8?w=400", true, 15, "5123.45", 99, "380K"},
	{"Palmirinha", creatorsdomain.CreatorTypeChef, `The pudim queen in Brazil. "The only thing you should be afraid of in the kitchen is running out of eggs!"`, "https://images.unsplash.com/photo-1595273670150-bd0c3c392e46?w=400", false, 6, "1876.90", 87, "120K"},
	{"Ana Maria Braga", creatorsdomain.CreatorTypeInfluencer, `TV presenter with a mascot parrot. "It's a good thing... that you subscribed to my flans!"`, "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=400", false, 9, "2987.30", 94, "890K"},
	{"Tía Carmen", creatorsdomain.CreatorTypeGrandma, `The sassiest flan maker this side of the Rio Grande. "Ay, mi amor, your caramel is too pale! Are you afraid of color?"`, "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=400", true, 11, "4321.65", 97, "560K"},
	{"Chef Eric Jacquin", creatorsdomain.CreatorTypeChef, `Believes everything is better with flan. Known for his "flan alfredo" and "tiramisu flan".`, "https://images.unsplash.com/photo-1583394293214-28ded15ee548?w=400", false, 7, "2154.75", 91, "230K"},
	{"Abuelita Consuelo", creatorsdomain.CreatorTypeGrandma, `Makes flan so good it should be illegal. Known for sneaking a little tequila into her recipes. "A little kick never hurt anybody, mija!"`, "https://images.unsplash.com/photo-1551836022-d5d88e9218df?w=400", false, 14, "3876.20", 96, "670K"},
}
