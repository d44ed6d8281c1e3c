package templating

import (
	"html/template"
)

type QrPageModel struct {
	// Target is the payload without its query string, used for the title.
	Target   string
	Data     string
	ImageUri template.URL
	Filename string

	// CreateUrl links back to the generator UI. Omitted when empty.
	CreateUrl string
}
