package catalog

import "github.com/fjod/go_cart/storefront/internal/domain"

// Default returns the shop's fixed product list.
func Default() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Handmade Birthday Hamper",
			Price:       399,
			Images:      []string{"/assets/handmade-birthday-hamper.png"},
			Description: "A beautifully curated birthday hamper filled with handpicked goodies, wrapped with love and care.",
			Details: []string{
				"Handcrafted with premium materials",
				"Includes personalized birthday card",
				"Contains assorted chocolates & treats",
				"Eco-friendly packaging",
				"Perfect for all ages",
			},
		},
		{
			ID:          2,
			Name:        "Personalized Gift Box",
			Price:       499,
			Images:      []string{"/assets/personalized-gift-box.png"},
			Description: "A customizable gift box that can be tailored to your loved ones preferences and interests.",
			Details: []string{
				"Fully customizable contents",
				"Add names or special messages",
				"Premium quality gift box",
				"Multiple size options available",
				"Gift wrapping included",
			},
		},
		{
			ID:          3,
			Name:        "Custom Greeting Card (Set of 3)",
			Price:       299,
			Images:      []string{"/assets/custom-greeting-cards.png"},
			Description: "Set of 3 beautifully designed greeting cards with custom messages for any occasion.",
			Details: []string{
				"Set of 3 unique designs",
				"Premium cardstock paper",
				"Customizable messages inside",
				"Envelopes included",
				"Suitable for any occasion",
			},
		},
		{
			ID:          4,
			Name:        "Mini Gift Hamper",
			Price:       599,
			Images:      []string{"/assets/mini-gift-hamper.png"},
			Description: "A compact yet delightful hamper perfect for small celebrations and thoughtful gestures.",
			Details: []string{
				"Compact and elegant design",
				"Curated premium items",
				"Perfect for office gifting",
				"Reusable basket included",
				"Same-day delivery available",
			},
		},
		{
			ID:    5,
			Name:  "Wedding Rukhwat",
			Price: 1999,
			Images: []string{
				"/assets/wedding-rukhwat.png",
				"/assets/wedding-rukhwat-4.png",
				"/assets/wedding-rukhwat-5.png",
				"/assets/wedding-rukhwat-6.png",
				"/assets/wedding-rukhwat-7.png",
			},
			Description: "Traditional wedding rukhwat set with exquisite decorations and premium quality items.",
			Details: []string{
				"Traditional handcrafted design",
				"Premium quality materials",
				"Complete set with all essentials",
				"Customizable decorations",
				"Auspicious and elegant packaging",
			},
		},
		{
			ID:          6,
			Name:        "Customize Flowers Bouquet",
			Price:       499,
			Images:      []string{"/assets/customize-flowers.png"},
			Description: "Fresh, handpicked flowers arranged in a stunning customizable bouquet for any occasion.",
			Details: []string{
				"Fresh flowers daily",
				"Choose your flower types",
				"Custom color combinations",
				"Elegant wrapping options",
				"Add-on message card available",
			},
		},
		{
			ID:          7,
			Name:        "Wedding Ceremonial Cloth",
			Price:       499,
			Images:      []string{"/assets/wedding-ceremonial-cloth.png", "/assets/wedding-ceremonial-cloth-2.png"},
			Description: "Traditional ceremonial cloth for wedding rituals, crafted with intricate designs and premium fabric.",
			Details: []string{
				"Premium quality fabric",
				"Traditional embroidery work",
				"Multiple color options",
				"Suitable for all ceremonies",
				"Gift packaging included",
			},
		},
		{
			ID:          8,
			Name:        "Wedding Customize Platters",
			Price:       0,
			PriceLabel:  "Price based on customization",
			Images:      []string{"/assets/wedding-platter-1.png", "/assets/wedding-platter-2.png"},
			Description: "Beautifully decorated wedding platters customized to match your ceremony theme and requirements.",
			Details: []string{
				"Fully customizable designs",
				"Premium decorative elements",
				"Available for all ceremonies (Haldi, Ring, Mehendi)",
				"Handcrafted with love",
				"Contact us for pricing",
			},
		},
	}
}
