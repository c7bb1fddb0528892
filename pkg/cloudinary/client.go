package cloudinary

import (
	"github.com/cloudinary/cloudinary-go/v2"
)

// New reads configuration from CLOUDINARY_URL.
func New() (*cloudinary.Cloudinary, error) {
	return cloudinary.New()
}
