package infra

import (
	"log"

	"gorm.io/gorm"

	"yatra/internal/models/db_models"
)

type seedAttraction struct {
	City          string
	Name          string
	Category      string
	DurationHours float64
	Lat           float64
	Lon           float64
	ImagePath     string
}

var seedAttractions = []seedAttraction{
	// Mumbai
	{"Mumbai", "Gateway of India", "history", 1.5, 18.9220, 72.8347, "assets/gateway-of-india.jpg"},
	{"Mumbai", "Chhatrapati Shivaji Maharaj Terminus", "architecture", 1.5, 18.9402, 72.8356, "assets/cst.jpg"},
	{"Mumbai", "Marine Drive", "nature", 2.0, 18.9430, 72.8238, "assets/mumbai/marine.jpg"},
	{"Mumbai", "Elephanta Caves", "history", 3.0, 18.9647, 72.9315, "assets/caves.jpg"},
	{"Mumbai", "Siddhivinayak Temple", "temple", 1.0, 19.0176, 72.8305, "assets/siddhivinayak.jpg"},
	{"Mumbai", "Haji Ali Dargah", "religion", 1.2, 18.9823, 72.8087, "assets/haji-ali.jpg"},
	{"Mumbai", "Colaba Causeway", "shopping", 1.5, 18.9223, 72.8336, "assets/colaba.jpg"},
	{"Mumbai", "Juhu Beach", "nature", 1.8, 19.0988, 72.8267, "assets/juhu.jpg"},
	{"Mumbai", "Chhatrapati Shivaji Maharaj Vastu Sangrahalaya", "history", 2.0, 18.9278, 72.8322, "assets/museum.jpg"},
	{"Mumbai", "Global Vipassana Pagoda", "religion", 2.5, 19.2250, 72.7930, "assets/pagoda.jpg"},
	{"Mumbai", "Film City", "entertainment", 3.0, 19.1670, 72.8628, "assets/filmcity.jpg"},
	{"Mumbai", "Powai Lake", "nature", 1.5, 19.1199, 72.9070, "assets/powai.jpg"},
	{"Mumbai", "EsselWorld", "entertainment", 4.0, 19.2760, 72.8070, "assets/esselworld.jpg"},
	{"Mumbai", "Kanheri Caves", "history", 2.5, 19.2150, 72.9200, "assets/kanheri.jpg"},
	{"Mumbai", "Bandra Worli Sea Link", "architecture", 1.0, 19.0360, 72.8160, "assets/sea-link.jpg"},
	{"Mumbai", "Dharavi Slum Tour", "culture", 2.0, 19.0400, 72.8500, "assets/dharavi.jpg"},

	// Pune
	{"Pune", "Shaniwar Wada", "history", 1.5, 18.5196, 73.8553, "assets/pune/shaniwarwada.jpg"},
	{"Pune", "Aga Khan Palace", "history", 1.5, 18.5525, 73.9034, "assets/pune/agakhan.jpg"},
	{"Pune", "Sinhagad Fort", "nature", 3.0, 18.3663, 73.7559, "assets/pune/sinhagad.jpg"},
	{"Pune", "Dagadusheth Halwai Ganapati Temple", "temple", 1.0, 18.5164, 73.8554, "assets/pune/dagadusheth.jpg"},
	{"Pune", "Pataleshwar Cave Temple", "temple", 1.0, 18.5304, 73.8462, "assets/pune/pataleshwar.jpg"},
	{"Pune", "FC Road (Shopping)", "shopping", 1.5, 18.5208, 73.8419, "assets/pune/fc_road.jpg"},
	{"Pune", "Raja Dinkar Kelkar Museum", "history", 2.0, 18.5120, 73.8510, "assets/pune/kelkar.jpg"},
	{"Pune", "Parvati Hill", "nature", 1.5, 18.4980, 73.8400, "assets/pune/parvati.jpg"},
	{"Pune", "Katraj Snake Park", "nature", 2.0, 18.4500, 73.8600, "assets/pune/katraj.jpg"},
	{"Pune", "Osho International Meditation Resort", "religion", 2.5, 18.5600, 73.9000, "assets/pune/osho.jpg"},
	{"Pune", "Phoenix Market City", "shopping", 3.0, 18.5600, 73.9200, "assets/pune/phoenix.jpg"},
	{"Pune", "National War Memorial Southern Command", "history", 1.0, 18.5300, 73.8700, "assets/pune/war_memorial.jpg"},
	{"Pune", "Appu Ghar Amusement Park", "entertainment", 4.0, 18.6200, 73.7800, "assets/pune/appu_ghar.jpg"},

	// Nashik
	{"Nashik", "Trimbakeshwar Temple", "temple", 2.0, 19.9408, 73.5291, "assets/nashik/trimbakeshwar.jpg"},
	{"Nashik", "Sula Vineyards", "food", 2.5, 20.0112, 73.7336, "assets/nashik/sula.jpg"},
	{"Nashik", "Panchavati", "religion", 1.5, 20.0059, 73.7906, "assets/nashik/panchavati.jpg"},
	{"Nashik", "Pandav Leni Caves", "history", 1.5, 20.0069, 73.7796, "assets/nashik/pandavleni.jpg"},
	{"Nashik", "Anjneri Hill", "nature", 3.0, 19.9640, 73.6373, "assets/nashik/anjneri.jpg"},
	{"Nashik", "Kalaram Temple", "temple", 1.0, 20.0000, 73.7800, "assets/nashik/kalaram.jpg"},
	{"Nashik", "Ramkund", "religion", 1.0, 20.0000, 73.7800, "assets/nashik/ramkund.jpg"},
	{"Nashik", "Coin Museum", "history", 1.5, 20.0000, 73.7800, "assets/nashik/coin_museum.jpg"},
	{"Nashik", "Dudhsagar Falls (Nashik)", "nature", 2.0, 20.0000, 73.7800, "assets/nashik/dudhsagar.jpg"},
	{"Nashik", "Saptashrungi Devi Temple", "temple", 2.5, 20.0000, 73.7800, "assets/nashik/saptashrungi.jpg"},
	{"Nashik", "Sita Gufa", "religion", 1.0, 20.0000, 73.7800, "assets/nashik/sita_gufa.jpg"},
	{"Nashik", "Sundarnarayan Temple", "temple", 1.0, 20.0000, 73.7800, "assets/nashik/sundarnarayan.jpg"},
}

// SeedCatalog returns the curated attraction rows in catalog order.
// CatalogOrder fixes the iteration order everywhere the planner needs a
// deterministic tie-break.
func SeedCatalog() []db_models.Attraction {
	out := make([]db_models.Attraction, 0, len(seedAttractions))
	for i, s := range seedAttractions {
		out = append(out, db_models.Attraction{
			City:          s.City,
			Name:          s.Name,
			Category:      s.Category,
			DurationHours: s.DurationHours,
			Lat:           s.Lat,
			Lon:           s.Lon,
			ImagePath:     s.ImagePath,
			CatalogOrder:  i + 1,
		})
	}
	return out
}

// SeedAttractions loads the catalog once; a non-empty table is left alone.
func SeedAttractions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&db_models.Attraction{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := SeedCatalog()
	if err := db.Create(&rows).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d catalog attractions", len(rows))
	return nil
}
