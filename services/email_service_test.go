package services

import (
	"strings"
	"testing"

	"estate-listing-service/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildEnquiryConfirmationHTML(t *testing.T) {
	enquiry := &models.Enquiry{
		Name:    "Li Si",
		Email:   "li@example.com",
		Phone:   "13900139000",
		Message: "Is it still available?",
	}

	html := BuildEnquiryConfirmationHTML(enquiry, "Garden Villa")
	assert.Contains(t, html, "Thank you for your enquiry, Li Si!")
	assert.Contains(t, html, "<strong>Garden Villa</strong>")
	assert.Contains(t, html, "li@example.com")
	assert.Contains(t, html, "13900139000")
	assert.Contains(t, html, "Is it still available?")
}

func TestBuildEnquiryConfirmationHTML_EmptyMessage(t *testing.T) {
	enquiry := &models.Enquiry{Name: "Li Si", Email: "li@example.com", Phone: "13900139000"}

	html := BuildEnquiryConfirmationHTML(enquiry, "Garden Villa")
	// 空留言用占位符展示
	assert.Contains(t, html, "—")
}

func TestBuildEnquiryAdminNotificationHTML(t *testing.T) {
	enquiry := &models.Enquiry{
		Name:    "Li Si",
		Email:   "li@example.com",
		Phone:   "13900139000",
		Message: "Please call me back",
		Status:  models.EnquiryStatusNew,
	}

	html := BuildEnquiryAdminNotificationHTML(enquiry, "Garden Villa")
	assert.Contains(t, html, "New Enquiry Received")
	assert.Contains(t, html, "<strong>Garden Villa</strong>")
	assert.Contains(t, html, "Please call me back")
	assert.Contains(t, html, models.EnquiryStatusNew)
}

func TestBuildMIMEMessage(t *testing.T) {
	message := buildMIMEMessage("noreply@example.com", "li@example.com", "Enquiry Received – Garden Villa", "<p>hi</p>")

	assert.True(t, strings.HasPrefix(message, "From: noreply@example.com\r\n"))
	assert.Contains(t, message, "To: li@example.com\r\n")
	assert.Contains(t, message, "Subject: Enquiry Received – Garden Villa\r\n")
	assert.Contains(t, message, "Content-Type: text/html; charset=\"UTF-8\"\r\n")

	// 头部与正文之间有空行
	headerEnd := strings.Index(message, "\r\n\r\n")
	assert.Greater(t, headerEnd, 0)
	assert.Contains(t, message[headerEnd:], "<p>hi</p>")
}

func TestEmailService_SendFailsWithoutServer(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.SMTPPort = "1" // 无服务监听，连接立即失败
	svc := NewEmailService(cfg)

	enquiry := &models.Enquiry{Name: "Li Si", Email: "li@example.com", Phone: "13900139000"}
	err := svc.SendEnquiryConfirmation(enquiry, "Garden Villa")
	assert.Error(t, err)
}
