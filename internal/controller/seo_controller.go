package controller

import (
	"encoding/xml"

	"bluehawks_backend/internal/model"
	"bluehawks_backend/pkg/config"
	"bluehawks_backend/pkg/database"

	"github.com/gofiber/fiber/v2"
)

var baseURL string

func InitSEOController(cfg *config.Config) {
	baseURL = cfg.BaseURL
}

// staticPages are the fixed site sections listed in the sitemap.
var staticPages = []string{"/", "/about/", "/services/", "/contact/", "/clients/", "/airport-bookings/"}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap lists the static pages plus every active service detail
// page, with lastmod from the service's update time.
func Sitemap(c *fiber.Ctx) error {
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	for _, page := range staticPages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        baseURL + page,
			ChangeFreq: "monthly",
			Priority:   "0.9",
		})
	}

	var services []model.Service
	if err := database.GetDB().
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("could not build sitemap")
	}

	for _, service := range services {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        baseURL + "/service/" + service.Slug + "/",
			LastMod:    service.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("could not build sitemap")
	}

	c.Set(fiber.HeaderContentType, "application/xml")
	return c.SendString(xml.Header + string(body))
}

// Robots keeps crawlers out of the admin paths and points at the
// sitemap.
func Robots(c *fiber.Ctx) error {
	content := "User-agent: *\n" +
		"Disallow: /admin/\n" +
		"Disallow: /static/admin/\n" +
		"Allow: /\n\n" +
		"Sitemap: " + baseURL + "/sitemap.xml\n"

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(content)
}
