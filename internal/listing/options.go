package listing

import "github.com/garnizeh/careers/pkg/models"

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Platform struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
}

// TimezoneOptions are the working-timezone choices of the application form.
var TimezoneOptions = []Option{
	{Value: "us-eastern", Label: "US Eastern (UTC-5/4)"},
	{Value: "us-central", Label: "US Central (UTC-6/5)"},
	{Value: "us-mountain", Label: "US Mountain (UTC-7/6)"},
	{Value: "us-pacific", Label: "US Pacific (UTC-8/7)"},
	{Value: "europe-western", Label: "Western Europe (UTC+1/2)"},
	{Value: "europe-central", Label: "Central Europe (UTC+1/2)"},
	{Value: "europe-eastern", Label: "Eastern Europe (UTC+2/3)"},
	{Value: "india", Label: "India (UTC+5:30)"},
	{Value: "japan", Label: "Japan (UTC+9)"},
	{Value: "china", Label: "China (UTC+8)"},
	{Value: "australia-eastern", Label: "Australia Eastern (UTC+10/11)"},
}

var SkillOptions = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C#",
	"React", "Angular", "Vue.js", "Next.js", "Node.js",
	"Express", "HTML/CSS", "Tailwind CSS", "SQL", "MongoDB",
	"PostgreSQL", "Docker", "AWS", "Git", "CI/CD",
}

var LinkPlatforms = []Platform{
	{ID: "github", Label: "GitHub", Placeholder: "https://github.com/username"},
	{ID: "linkedin", Label: "LinkedIn", Placeholder: "https://linkedin.com/in/username"},
	{ID: "portfolio", Label: "Portfolio", Placeholder: "https://yourportfolio.com"},
	{ID: "behance", Label: "Behance", Placeholder: "https://behance.net/username"},
	{ID: "dribbble", Label: "Dribbble", Placeholder: "https://dribbble.com/username"},
	{ID: "medium", Label: "Medium", Placeholder: "https://medium.com/@username"},
}

// ApplicationOptions bundles the choices the application form offers.
type ApplicationOptions struct {
	Availability []string   `json:"availability"`
	Timezones    []Option   `json:"timezones"`
	Skills       []string   `json:"skills"`
	Platforms    []Platform `json:"platforms"`
}

func Options() ApplicationOptions {
	return ApplicationOptions{
		Availability: models.Availabilities,
		Timezones:    TimezoneOptions,
		Skills:       SkillOptions,
		Platforms:    LinkPlatforms,
	}
}

// IsTimezoneOption reports whether v is one of TimezoneOptions.
func IsTimezoneOption(v string) bool {
	for _, o := range TimezoneOptions {
		if o.Value == v {
			return true
		}
	}
	return false
}
