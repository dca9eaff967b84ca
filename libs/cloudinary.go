package libs

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog/log"
)

func newClient() (*cloudinary.Cloudinary, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		cldURL := os.Getenv("CLOUDINARY_URL")
		if cldURL == "" {
			return nil, fmt.Errorf("cloudinary environment variables not set")
		}
		return cloudinary.NewFromURL(cldURL)
	}

	return cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
}

// UploadToCloudinary uploads a local image and removes the local copy.
// Returns the hosted secure URL and the public ID needed for deletion.
func UploadToCloudinary(localPath string) (string, string, error) {
	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return "", "", fmt.Errorf("file not found: %s", localPath)
	}

	cld, err := newClient()
	if err != nil {
		return "", "", fmt.Errorf("cloudinary init failed: %v", err)
	}

	resp, err := cld.Upload.Upload(context.Background(), localPath, uploader.UploadParams{
		PublicID: fmt.Sprintf("item_%d", time.Now().UnixNano()),
		Folder:   "items",
	})

	os.Remove(localPath)

	if err != nil {
		return "", "", err
	}
	if resp == nil {
		return "", "", fmt.Errorf("cloudinary response is nil")
	}

	if resp.SecureURL == "" {
		if resp.URL != "" {
			return resp.URL, resp.PublicID, nil
		}
		return "", "", fmt.Errorf("both SecureURL and URL are empty")
	}

	return resp.SecureURL, resp.PublicID, nil
}

func DeleteFromCloudinary(publicID string) error {
	cld, err := newClient()
	if err != nil {
		return fmt.Errorf("cloudinary init failed: %v", err)
	}

	result, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete from Cloudinary: %v", err)
	}

	if result.Result != "ok" {
		log.Warn().Str("public_id", publicID).Str("result", result.Result).Msg("cloudinary deletion not ok")
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}

	return nil
}
