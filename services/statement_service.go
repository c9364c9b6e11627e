package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	config "github.com/sheratonhq/sheraton/configs"
	"github.com/sheratonhq/sheraton/database"
	"github.com/sheratonhq/sheraton/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const statementHistoryLimit = 100

// GenerateAccountStatement renders the user's balance, investments and
// transaction history to a PDF and uploads it, returning the document URL.
func GenerateAccountStatement(userID uuid.UUID) (string, error) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return "", err
	}

	var investments []models.Investment
	if err := database.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&investments).Error; err != nil {
		return "", err
	}

	var deposits []models.Transaction
	if err := database.DB.Where("user_id = ?", userID).Order("created_at desc").Limit(statementHistoryLimit).Find(&deposits).Error; err != nil {
		return "", err
	}

	var withdrawals []models.Withdrawal
	if err := database.DB.Where("user_id = ?", userID).Order("created_at desc").Limit(statementHistoryLimit).Find(&withdrawals).Error; err != nil {
		return "", err
	}

	htmlData, err := renderStatementHTML(user, investments, deposits, withdrawals)
	if err != nil {
		return "", fmt.Errorf("failed to render statement HTML: %w", err)
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		return "", fmt.Errorf("failed to generate PDF: %w", err)
	}

	return uploadStatement(pdfBytes, userID.String())
}

func renderStatementHTML(user models.User, investments []models.Investment, deposits []models.Transaction, withdrawals []models.Withdrawal) (string, error) {
	tmpl, err := template.ParseFiles("templates/statement.html")
	if err != nil {
		return "", err
	}

	data := struct {
		FullName    string
		Email       string
		Balance     float64
		GeneratedAt string
		Investments []models.Investment
		Deposits    []models.Transaction
		Withdrawals []models.Withdrawal
	}{
		FullName:    user.FullName,
		Email:       user.Email,
		Balance:     user.Balance,
		GeneratedAt: time.Now().Format("January 2, 2006"),
		Investments: investments,
		Deposits:    deposits,
		Withdrawals: withdrawals,
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadStatement(fileBytes []byte, userID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("statements/%s_%s", userID, uuid.New().String()),
		Folder:       "sheraton_statements",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
