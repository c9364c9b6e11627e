package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	config "github.com/sheratonhq/sheraton/configs"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const paymentProofFolder = "sheraton_payment_proofs"

// proofPublicID scopes an uploaded payment proof to the depositor, so one
// user's proof can never overwrite another's and the admin can trace a file
// back to the account that sent it.
func proofPublicID(userID uuid.UUID, timestamp int64) string {
	return fmt.Sprintf("proof_%s_%d", userID, timestamp)
}

// GenerateUploadSignature creates a secure signature so the frontend can
// upload a payment-proof image straight to Cloudinary, pinned to a
// user-scoped public ID.
func GenerateUploadSignature(c *fiber.Ctx) error {
	userID := currentUserID(c)

	cloudinaryURL := config.Config("CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
	}

	parsedURL, err := url.Parse(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to parse Cloudinary URL"})
	}
	secret, _ := parsedURL.User.Password()

	timestamp := time.Now().Unix()
	publicID := proofPublicID(userID, timestamp)

	paramsToSign, err := api.StructToParams(uploader.UploadParams{
		Folder:   paymentProofFolder,
		PublicID: publicID,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare signature params"})
	}

	paramsToSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(paramsToSign, secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign upload params"})
	}

	apiKey := cld.Config.Cloud.APIKey

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"api_key":   apiKey,
		"folder":    paymentProofFolder,
		"public_id": publicID,
	})
}
