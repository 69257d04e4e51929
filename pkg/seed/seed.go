package seed

import (
	"log"

	"bluehawks_backend/internal/model"

	"gorm.io/gorm"
)

// SeedServices inserts the default catalog entries when missing, so a
// fresh database serves a populated services page.
func SeedServices(db *gorm.DB) {
	services := []model.Service{
		{
			Name:             "Airport Transportation",
			ShortDescription: "Secure airport pickup and drop-off across Pakistan with security-trained drivers.",
			Description:      "Professional airport pickup and drop-off services across Pakistan. Reliable transportation to and from major airports with security-trained drivers and well-maintained vehicles.",
			Icon:             "fa-plane",
		},
		{
			Name:             "Security Guards",
			ShortDescription: "Trained and vetted security personnel for residential and commercial premises.",
			Description:      "Uniformed security guards for offices, residences, events and industrial sites. All personnel are background-checked and trained to our standards.",
			Icon:             "fa-shield",
		},
		{
			Name:             "Security Training",
			ShortDescription: "Certification courses for security professionals and corporate staff.",
			Description:      "Training programs covering physical security, emergency response and workplace safety, delivered by experienced instructors.",
			Icon:             "fa-graduation-cap",
		},
	}

	for _, service := range services {
		result := db.FirstOrCreate(&service, model.Service{Name: service.Name})
		if result.Error != nil {
			log.Printf("Error creating service %s: %v", service.Name, result.Error)
		}
	}

	log.Println("Default services seeded successfully!")
}
