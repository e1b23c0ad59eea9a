package catalog

import "github.com/raushankrgupta/skincare-storefront/models"

func gallery(dir string) []string {
	return []string{
		"/images/products/" + dir + "/1.jpg",
		"/images/products/" + dir + "/2.jpg",
		"/images/products/" + dir + "/3.jpg",
	}
}

var products = []models.Product{
	{
		ID:             "1",
		Name:           "Gentle Foaming Cleanser",
		Brand:          "CeraVe",
		Price:          189000,
		OriginalPrice:  219000,
		Discount:       14,
		Rating:         4.8,
		ReviewCount:    1245,
		Image:          "/images/products/foaming-cleanser/1.jpg",
		Href:           "/product/gentle-foaming-cleanser",
		IsBestSeller:   true,
		Category:       "Pembersih",
		CategorySlug:   "cleansing",
		Description:    "Pembersih wajah berbusa lembut yang diformulasikan dengan 3 essential ceramides dan hyaluronic acid untuk membersihkan kulit tanpa menghilangkan kelembapan alami.",
		KeyIngredients: []string{"Ceramides", "Hyaluronic Acid", "Niacinamide", "Vitamin B5"},
		Benefits: []string{
			"Membersihkan kotoran dan makeup",
			"Mempertahankan kelembapan kulit",
			"Memperkuat skin barrier",
			"Cocok untuk kulit sensitif",
		},
		HowToUse: []string{
			"Basahi wajah dengan air hangat",
			"Aplikasikan cleanser ke telapak tangan",
			"Pijat lembut ke wajah selama 30-60 detik",
			"Bilas dengan air hingga bersih",
		},
		Images:     gallery("foaming-cleanser"),
		InStock:    true,
		StockCount: 25,
		SkinType:   []string{"All Types", "Sensitive"},
		Concerns:   []string{"Cleansing", "Hydration"},
	},
	{
		ID:             "2",
		Name:           "Hydrating Hyaluronic Acid Serum",
		Brand:          "CeraVe",
		Price:          245000,
		OriginalPrice:  289000,
		Discount:       15,
		Rating:         4.9,
		ReviewCount:    567,
		Image:          "/images/products/acid-serum/1.jpg",
		Href:           "/product/hydrating-serum",
		IsBestSeller:   true,
		Category:       "Serum",
		CategorySlug:   "serums",
		Description:    "Serum hyaluronic acid yang memberikan hidrasi intensif dan membantu menjaga kelembapan kulit sepanjang hari.",
		KeyIngredients: []string{"Hyaluronic Acid", "Vitamin B5", "Ceramides"},
		Benefits: []string{
			"Memberikan hidrasi intensif",
			"Menjaga kelembapan kulit",
			"Meningkatkan elastisitas kulit",
			"Cocok untuk semua jenis kulit",
		},
		HowToUse: []string{
			"Bersihkan wajah terlebih dahulu",
			"Aplikasikan 2-3 tetes serum ke wajah",
			"Pijat lembut hingga meresap",
			"Gunakan pagi dan malam",
		},
		Images:     gallery("acid-serum"),
		InStock:    true,
		StockCount: 18,
		SkinType:   []string{"All Types", "Dry"},
		Concerns:   []string{"Hydration", "Anti-Aging"},
	},
	{
		ID:             "3",
		Name:           "Daily Moisturizing Lotion",
		Brand:          "CeraVe",
		Price:          165000,
		OriginalPrice:  189000,
		Discount:       13,
		Rating:         4.7,
		ReviewCount:    889,
		Image:          "/images/products/moisturizer/1.jpg",
		Href:           "/product/daily-moisturizer",
		Category:       "Pelembab",
		CategorySlug:   "moisturizers",
		Description:    "Pelembab harian yang ringan dan mudah meresap, diformulasikan dengan ceramides untuk melembapkan dan melindungi skin barrier.",
		KeyIngredients: []string{"Ceramides", "Dimethicone", "Glycerin"},
		Benefits: []string{
			"Melembapkan sepanjang hari",
			"Memperkuat skin barrier",
			"Tekstur ringan dan tidak lengket",
			"Dapat digunakan pada wajah dan tubuh",
		},
		HowToUse: []string{
			"Aplikasikan pada kulit yang bersih",
			"Pijat lembut hingga meresap",
			"Gunakan pagi dan malam",
		},
		Images:     gallery("moisturizer"),
		InStock:    true,
		StockCount: 32,
		SkinType:   []string{"All Types", "Normal"},
		Concerns:   []string{"Hydration", "Daily Care"},
	},
	{
		ID:             "4",
		Name:           "Micellar Water",
		Brand:          "Garnier",
		Price:          89000,
		Rating:         4.3,
		ReviewCount:    189,
		Image:          "/images/products/micellar-water/1.jpg",
		Href:           "/product/micellar-water",
		IsNew:          true,
		Category:       "Pembersih",
		CategorySlug:   "cleansing",
		Description:    "Micellar water yang lembut untuk membersihkan makeup dan kotoran tanpa perlu dibilas, cocok untuk semua jenis kulit.",
		KeyIngredients: []string{"Micelles", "Glycerin", "Arginine"},
		Benefits: []string{
			"Membersihkan makeup waterproof",
			"Tidak perlu dibilas",
			"Lembut untuk mata sensitif",
			"Memberikan kelembapan",
		},
		HowToUse: []string{
			"Tuangkan pada kapas secukupnya",
			"Usap lembut pada wajah dan mata",
			"Tidak perlu dibilas",
			"Gunakan pagi dan malam",
		},
		Images:     gallery("micellar-water"),
		InStock:    true,
		StockCount: 45,
		SkinType:   []string{"All Types", "Sensitive"},
		Concerns:   []string{"Makeup Removal", "Cleansing"},
	},
	{
		ID:             "5",
		Name:           "Vitamin C Serum",
		Brand:          "Skinceuticals",
		Price:          450000,
		Rating:         4.8,
		ReviewCount:    567,
		Image:          "/images/products/vitamin-c-serum/1.jpg",
		Href:           "/product/vitamin-c-serum",
		IsBestSeller:   true,
		Category:       "Serum",
		CategorySlug:   "serums",
		Description:    "Serum vitamin C dengan konsentrasi tinggi untuk mencerahkan kulit dan memberikan perlindungan antioksidan.",
		KeyIngredients: []string{"L-Ascorbic Acid", "Vitamin E", "Ferulic Acid"},
		Benefits: []string{
			"Mencerahkan kulit kusam",
			"Melindungi dari radikal bebas",
			"Meratakan warna kulit",
			"Meningkatkan produksi kolagen",
		},
		HowToUse: []string{
			"Gunakan pada pagi hari",
			"Aplikasikan 2-3 tetes ke wajah",
			"Hindari area mata",
			"Selalu gunakan sunscreen setelahnya",
		},
		Images:     gallery("vitamin-c-serum"),
		InStock:    true,
		StockCount: 12,
		SkinType:   []string{"All Types", "Dull"},
		Concerns:   []string{"Brightening", "Anti-Aging"},
	},
	{
		ID:             "6",
		Name:           "Niacinamide 10% + Zinc 1%",
		Brand:          "The Ordinary",
		Price:          85000,
		Rating:         4.3,
		ReviewCount:    389,
		Image:          "/images/products/niacinamide-serum/1.jpg",
		Href:           "/product/niacinamide-serum",
		IsBestSeller:   true,
		Category:       "Serum",
		CategorySlug:   "serums",
		Description:    "Serum niacinamide dengan zinc untuk mengontrol minyak berlebih dan meminimalkan tampilan pori-pori.",
		KeyIngredients: []string{"Niacinamide", "Zinc PCA"},
		Benefits: []string{
			"Mengontrol produksi minyak",
			"Meminimalkan tampilan pori",
			"Mencerahkan bekas jerawat",
			"Menenangkan kulit meradang",
		},
		HowToUse: []string{
			"Aplikasikan pada kulit yang bersih",
			"Gunakan 2-3 tetes pada wajah",
			"Pijat lembut hingga meresap",
			"Gunakan pagi dan malam",
		},
		Images:     gallery("niacinamide-serum"),
		InStock:    true,
		StockCount: 28,
		SkinType:   []string{"Oily", "Combination", "Acne-Prone"},
		Concerns:   []string{"Pore Care", "Oil Control"},
	},
	{
		ID:             "7",
		Name:           "Anthelios Ultra Light Fluid SPF 50+",
		Brand:          "La Roche-Posay",
		Price:          295000,
		Rating:         4.7,
		ReviewCount:    278,
		Image:          "/images/products/sunscreen/1.jpg",
		Href:           "/product/anthelios-sunscreen",
		IsBestSeller:   true,
		Category:       "Tabir Surya",
		CategorySlug:   "sunscreen",
		Description:    "Sunscreen dengan perlindungan UVA/UVB tinggi, tekstur ringan dan tidak meninggalkan white cast.",
		KeyIngredients: []string{"Mexoryl SX", "Mexoryl XL", "Thermal Spring Water"},
		Benefits: []string{
			"Perlindungan SPF 50+ PA++++",
			"Tekstur ringan tidak lengket",
			"Tidak meninggalkan white cast",
			"Tahan air dan keringat",
		},
		HowToUse: []string{
			"Aplikasikan 15 menit sebelum terpapar sinar matahari",
			"Gunakan secukupnya pada wajah dan leher",
			"Aplikasikan ulang setiap 2 jam",
			"Gunakan sebagai langkah terakhir skincare",
		},
		Images:     gallery("sunscreen"),
		InStock:    true,
		StockCount: 22,
		SkinType:   []string{"All Types", "Sensitive"},
		Concerns:   []string{"UV Protection", "Anti-Aging"},
	},
	{
		ID:             "8",
		Name:           "Hydrating Sheet Mask",
		Brand:          "Innisfree",
		Price:          25000,
		Rating:         4.2,
		ReviewCount:    156,
		Image:          "/images/products/hydrating-mask/1.jpg",
		Href:           "/product/hydrating-mask",
		IsNew:          true,
		Category:       "Masker",
		CategorySlug:   "masks",
		Description:    "Sheet mask dengan hyaluronic acid untuk memberikan hidrasi intensif dan menenangkan kulit.",
		KeyIngredients: []string{"Hyaluronic Acid", "Aloe Vera", "Green Tea Extract"},
		Benefits: []string{
			"Memberikan hidrasi intensif",
			"Menenangkan kulit iritasi",
			"Meningkatkan kelembapan kulit",
			"Praktis dan mudah digunakan",
		},
		HowToUse: []string{
			"Bersihkan wajah terlebih dahulu",
			"Aplikasikan masker pada wajah",
			"Diamkan selama 15-20 menit",
			"Lepas masker dan pijat sisa essence",
		},
		Images:     gallery("hydrating-mask"),
		InStock:    true,
		StockCount: 50,
		SkinType:   []string{"All Types", "Dry"},
		Concerns:   []string{"Hydration", "Soothing"},
	},
	{
		ID:             "9",
		Name:           "Facial Roller Jade",
		Brand:          "Gua Sha Co",
		Price:          120000,
		OriginalPrice:  150000,
		Discount:       20,
		Rating:         4.1,
		ReviewCount:    89,
		Image:          "/images/products/facial-roller/1.jpg",
		Href:           "/product/facial-roller",
		Category:       "Alat Kecantikan",
		CategorySlug:   "tools",
		Description:    "Facial roller dari batu jade asli untuk membantu lymphatic drainage dan meningkatkan sirkulasi darah.",
		KeyIngredients: []string{"Natural Jade Stone"},
		Benefits: []string{
			"Membantu lymphatic drainage",
			"Meningkatkan sirkulasi darah",
			"Mengurangi bengkak di wajah",
			"Membantu penyerapan skincare",
		},
		HowToUse: []string{
			"Simpan di kulkas untuk efek cooling",
			"Aplikasikan skincare terlebih dahulu",
			"Roll dari tengah wajah ke arah luar",
			"Gunakan tekanan lembut",
		},
		Images:     gallery("facial-roller"),
		InStock:    true,
		StockCount: 15,
		SkinType:   []string{"All Types"},
		Concerns:   []string{"Lymphatic Drainage", "Relaxation"},
	},
	{
		ID:             "10",
		Name:           "Charcoal Deep Clean Mask",
		Brand:          "The Body Shop",
		Price:          165000,
		OriginalPrice:  195000,
		Discount:       15,
		Rating:         4.1,
		ReviewCount:    98,
		Image:          "/images/products/charcoal-mask/1.jpg",
		Href:           "/product/charcoal-mask",
		Category:       "Masker",
		CategorySlug:   "masks",
		Description:    "Masker clay dengan charcoal untuk deep cleansing dan mengangkat impurities dari pori-pori.",
		KeyIngredients: []string{"Activated Charcoal", "Kaolin Clay", "Tea Tree Oil"},
		Benefits: []string{
			"Deep cleansing pori-pori",
			"Mengangkat blackhead",
			"Mengontrol minyak berlebih",
			"Menyegarkan kulit",
		},
		HowToUse: []string{
			"Aplikasikan pada wajah yang bersih",
			"Hindari area mata dan bibir",
			"Diamkan hingga kering (10-15 menit)",
			"Bilas dengan air hangat",
		},
		Images:     gallery("charcoal-mask"),
		InStock:    true,
		StockCount: 20,
		SkinType:   []string{"Oily", "Combination"},
		Concerns:   []string{"Deep Cleansing", "Pore Care"},
	},
}

var brands = []models.Brand{
	{ID: "1", Name: "CeraVe", Logo: "/images/brands/cerave.png", Href: "/brand/cerave", ProductCount: 45, Description: "Skincare dermatologist-recommended"},
	{ID: "2", Name: "The Ordinary", Logo: "/images/brands/the-ordinary.jpg", Href: "/brand/the-ordinary", ProductCount: 32, Description: "Clinical formulations with integrity"},
	{ID: "3", Name: "La Roche-Posay", Logo: "/images/brands/la-roche-posay.png", Href: "/brand/la-roche-posay", ProductCount: 38, Description: "Toleriane dan thermal water"},
	{ID: "4", Name: "Olay", Logo: "/images/brands/olay.png", Href: "/brand/olay", ProductCount: 29, Description: "Regenerist anti-aging"},
	{ID: "5", Name: "Neutrogena", Logo: "/images/brands/neutrogena.png", Href: "/brand/neutrogena", ProductCount: 41, Description: "Dermatologist recommended"},
	{ID: "6", Name: "Innisfree", Logo: "/images/brands/innisfree.png", Href: "/brand/innisfree", ProductCount: 35, Description: "Natural skincare dari Korea"},
	{ID: "7", Name: "COSRX", Logo: "/images/brands/cosrx.png", Href: "/brand/cosrx", ProductCount: 28, Description: "K-beauty advanced skincare"},
	{ID: "8", Name: "Some By Mi", Logo: "/images/brands/some-by-mi.webp", Href: "/brand/some-by-mi", ProductCount: 24, Description: "Bye Bye Blackhead & AHA-BHA"},
	{ID: "9", Name: "Skintific", Logo: "/images/brands/skintific.png", Href: "/brand/skintific", ProductCount: 22, Description: "Local skincare innovation"},
	{ID: "10", Name: "Wardah", Logo: "/images/brands/wardah.png", Href: "/brand/wardah", ProductCount: 33, Description: "Halal beauty Indonesia"},
}

type categoryInfo struct {
	slug        string
	name        string
	description string
}

// categoryOrder keeps the listing order stable.
var categoryOrder = []categoryInfo{
	{"cleansing", "Pembersih", "Pembersih lembut untuk semua jenis kulit"},
	{"moisturizers", "Pelembab", "Krim dan lotion pelembab"},
	{"serums", "Serum", "Perawatan khusus dan essence"},
	{"sunscreen", "Tabir Surya", "Perlindungan UV untuk penggunaan harian"},
	{"masks", "Masker", "Sheet mask dan perawatan khusus"},
	{"tools", "Alat Kecantikan", "Alat dan aksesoris kecantikan"},
}
