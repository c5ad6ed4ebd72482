// Command seed wipes the foods collection and loads the starter catalog.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/app"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/model"
)

var foods = []model.Food{
	{
		Name:        "Classic Cheeseburger",
		Desc:        "A juicy beef patty topped with melted cheddar, fresh lettuce, tomato, and our secret sauce on a toasted brioche bun.",
		Img:         "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?q=80&w=1000&auto=format&fit=crop",
		Price:       model.Price{Org: 249, MRP: 299, Off: 17},
		Category:    []string{"Burgers", "Burger"},
		Ingredients: []string{"Beef Patty", "Cheddar Cheese", "Lettuce", "Tomato", "Brioche Bun", "Secret Sauce"},
	},
	{
		Name:        "Spicy Pepperoni Pizza",
		Desc:        "Freshly baked thin-crust pizza loaded with spicy pepperoni, mozzarella, and chili flakes.",
		Img:         "https://images.unsplash.com/photo-1628840042765-356cda07504e?q=80&w=1000&auto=format&fit=crop",
		Price:       model.Price{Org: 499, MRP: 599, Off: 16},
		Category:    []string{"Pizzas", "Pizza"},
		Ingredients: []string{"Pizza Dough", "Tomato Sauce", "Mozzarella", "Pepperoni", "Chili Flakes"},
	},
	{
		Name:        "Hyderabadi Chicken Biryani",
		Desc:        "Authentic slow-cooked basmati rice and tender chicken, infused with saffron and aromatic spices.",
		Img:         "https://images.unsplash.com/photo-1563379091339-03b17af4a4f9?q=80&w=1000&auto=format&fit=crop",
		Price:       model.Price{Org: 349, MRP: 450, Off: 22},
		Category:    []string{"Biriyanis"},
		Ingredients: []string{"Basmati Rice", "Chicken", "Saffron", "Yogurt", "Onions", "Spices"},
	},
	{
		Name:        "Creamy Alfredo Pasta",
		Desc:        "Al dente fettuccine tossed in a rich and velvety parmesan cream sauce with a hint of garlic.",
		Img:         "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?q=80&w=1000&auto=format&fit=crop",
		Price:       model.Price{Org: 299, MRP: 349, Off: 14},
		Category:    []string{"Pasta"},
		Ingredients: []string{"Fettuccine", "Heavy Cream", "Parmesan", "Garlic", "Butter"},
	},
	{
		Name:        "Chocolate Lava Cake",
		Desc:        "Warm and decadent chocolate cake with a molten lava center, served with a scoop of vanilla bean ice cream.",
		Img:         "https://images.unsplash.com/photo-1624353335566-68a33a8ed717?q=80&w=1000&auto=format&fit=crop",
		Price:       model.Price{Org: 199, MRP: 249, Off: 20},
		Category:    []string{"Desserts", "Dessert"},
		Ingredients: []string{"Dark Chocolate", "Butter", "Eggs", "Sugar", "Flour", "Vanilla Ice Cream"},
	},
	{
		Name:        "Margarita Pizza",
		Desc:        "The classic – simple yet delicious with fresh basil, mozzarella di bufala, and extra virgin olive oil.",
		Img:         "https://images.unsplash.com/photo-1574071318508-1cdbad80ad50?q=80&w=1000&auto=format&fit=crop",
		Price:       model.Price{Org: 399, MRP: 449, Off: 11},
		Category:    []string{"Pizzas", "Pizza"},
		Ingredients: []string{"Pizza Dough", "San Marzano Tomatoes", "Mozzarella Buffalo", "Fresh Basil", "Olive Oil"},
	},
	{
		Name:        "Crispy Fried Chicken",
		Desc:        "Golden, crispy, and juicy fried chicken pieces served with a side of coleslaw and spicy mayo.",
		Img:         "https://images.unsplash.com/photo-1626645738196-c2a7c8d08f58?q=80&w=1000&auto=format&fit=crop",
		Price:       model.Price{Org: 320, MRP: 380, Off: 15},
		Category:    []string{"Burgers"},
		Ingredients: []string{"Chicken Wings/Thighs", "Buttermilk", "Flour", "Spices", "Coleslaw"},
	},
	{
		Name:        "Sushi Platter (12pcs)",
		Desc:        "A fresh assortment of California rolls, Spicy Tuna, and Salmon Nigiri, served with wasabi and ginger.",
		Img:         "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?q=80&w=1000&auto=format&fit=crop",
		Price:       model.Price{Org: 699, MRP: 899, Off: 22},
		Category:    []string{"Sushi"},
		Ingredients: []string{"Sushi Rice", "Nori", "Fresh Salmon", "Tuna", "Cucumber", "Avocado"},
	},
	{
		Name:        "Blueberry Cheesecake",
		Desc:        "Rich New York style cheesecake topped with a sweet and tangy blueberry compote on a graham cracker crust.",
		Img:         "https://images.unsplash.com/photo-1533134242443-d4fd215305ad?q=80&w=1000&auto=format&fit=crop",
		Price:       model.Price{Org: 249, MRP: 299, Off: 16},
		Category:    []string{"Desserts", "Dessert"},
		Ingredients: []string{"Cream Cheese", "Graham Crackers", "Blueberries", "Sugar", "Vanilla"},
	},
	{
		Name:        "Iced Caramel Macchiato",
		Desc:        "Espresso combined with vanilla-flavored syrup, milk, and ice, topped with a drizzle of caramel.",
		Img:         "https://images.unsplash.com/photo-1485808191679-5f86510681a2?q=80&w=1000&auto=format&fit=crop",
		Price:       model.Price{Org: 149, MRP: 180, Off: 17},
		Category:    []string{"Beverages"},
		Ingredients: []string{"Espresso", "Milk", "Caramel Sauce", "Vanilla Syrup", "Ice"},
	},
	{
		Name:        "Chicken Hakka Noodles",
		Desc:        "Wok-tossed noodles with shredded chicken and crunchy vegetables in a light soy sauce.",
		Img:         "https://images.unsplash.com/photo-1585032226651-759b368d7246?q=80&w=1000&auto=format&fit=crop",
		Price:       model.Price{Org: 229, MRP: 279, Off: 17},
		Category:    []string{"Noodles"},
		Ingredients: []string{"Noodles", "Chicken", "Cabbage", "Carrot", "Soy Sauce", "Green Chili"},
	},
	{
		Name:        "Classic Caesar Salad",
		Desc:        "Crisp romaine lettuce, buttery croutons, and parmesan cheese tossed in a creamy Caesar dressing.",
		Img:         "https://images.unsplash.com/photo-1550304943-4bf63cd66228?q=80&w=1000&auto=format&fit=crop",
		Price:       model.Price{Org: 189, MRP: 249, Off: 24},
		Category:    []string{"Salads"},
		Ingredients: []string{"Romaine Lettuce", "Croutons", "Parmesan", "Caesar Dressing", "Lemon"},
	},
	{
		Name:        "Loaded Nachos",
		Desc:        "Crispy tortilla chips smothered in melted cheese, jalapenos, sour cream, and pico de gallo.",
		Img:         "https://images.unsplash.com/photo-1513456852971-30c0b8199d4d?q=80&w=1000&auto=format&fit=crop",
		Price:       model.Price{Org: 259, MRP: 320, Off: 19},
		Category:    []string{"Appetizers"},
		Ingredients: []string{"Tortilla Chips", "Cheese Sauce", "Jalapenos", "Sour Cream", "Pico de Gallo"},
	},
	{
		Name:        "Mango Lassi",
		Desc:        "A traditional thick and creamy mango yogurt drink with a hint of cardamom.",
		Img:         "https://images.unsplash.com/photo-1546173159-315724a9f440?q=80&w=1000&auto=format&fit=crop",
		Price:       model.Price{Org: 99, MRP: 129, Off: 23},
		Category:    []string{"Beverages"},
		Ingredients: []string{"Mango Pulp", "Yogurt", "Sugar", "Milk", "Cardamom"},
	},
	{
		Name:        "Fresh Fruit Bowl",
		Desc:        "A colorful medley of seasonal fruits including watermelon, grapes, apple, and kiwi.",
		Img:         "https://images.unsplash.com/photo-1519996529931-28324d5a630e?q=80&w=1000&auto=format&fit=crop",
		Price:       model.Price{Org: 159, MRP: 199, Off: 20},
		Category:    []string{"Salads"},
		Ingredients: []string{"Watermelon", "Grapes", "Apple", "Kiwi", "Orange Juice"},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := app.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	coll := client.Database(cfg.MongoDB).Collection("foods")
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("clear foods: %v", err)
	}

	now := time.Now().UTC()
	docs := make([]any, 0, len(foods))
	for i := range foods {
		foods[i].CreatedAt = now
		foods[i].UpdatedAt = now
		docs = append(docs, foods[i])
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		log.Fatalf("insert foods: %v", err)
	}
	log.Printf("seeded %d food items", len(foods))
}
