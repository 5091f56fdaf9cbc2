package services

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"estate-listing-service/config"
	"estate-listing-service/models"
)

// InterfaceEmailService 定义邮件通知服务接口
type InterfaceEmailService interface {
	SendEnquiryConfirmation(enquiry *models.Enquiry, propertyTitle string) error
	SendEnquiryAdminNotification(enquiry *models.Enquiry, propertyTitle string) error
}

// EmailService 通过SMTP发送咨询通知邮件。
// 发送是同步阻塞的，不重试，失败直接向调用方返回错误。
type EmailService struct {
	Config *config.Config
}

// NewEmailService 创建一个新的邮件服务
func NewEmailService(cfg *config.Config) InterfaceEmailService {
	return &EmailService{Config: cfg}
}

// 1. SendEnquiryConfirmation 向咨询人发送确认邮件
func (s *EmailService) SendEnquiryConfirmation(enquiry *models.Enquiry, propertyTitle string) error {
	subject := fmt.Sprintf("Enquiry Received – %s", propertyTitle)
	html := BuildEnquiryConfirmationHTML(enquiry, propertyTitle)
	return s.sendMail(enquiry.Email, subject, html)
}

// 2. SendEnquiryAdminNotification 向管理员发送新咨询提醒
func (s *EmailService) SendEnquiryAdminNotification(enquiry *models.Enquiry, propertyTitle string) error {
	subject := fmt.Sprintf("New Enquiry – %s (from %s)", propertyTitle, enquiry.Name)
	html := BuildEnquiryAdminNotificationHTML(enquiry, propertyTitle)
	return s.sendMail(s.Config.AdminEmail, subject, html)
}

// sendMail 建立明文连接后升级为TLS，登录并投递单收件人HTML邮件
func (s *EmailService) sendMail(to, subject, htmlBody string) error {
	addr := s.Config.GetSMTPAddr()

	c, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("连接SMTP服务器失败: %w", err)
	}
	defer c.Close()

	if err = c.StartTLS(&tls.Config{ServerName: s.Config.SMTPHost}); err != nil {
		return fmt.Errorf("STARTTLS失败: %w", err)
	}

	auth := smtp.PlainAuth("", s.Config.SMTPUser, s.Config.SMTPPassword, s.Config.SMTPHost)
	if err = c.Auth(auth); err != nil {
		return fmt.Errorf("SMTP认证失败: %w", err)
	}

	if err = c.Mail(s.Config.SMTPUser); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}

	message := buildMIMEMessage(s.Config.SMTPUser, to, subject, htmlBody)
	if _, err = w.Write([]byte(message)); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}

	return c.Quit()
}

// buildMIMEMessage 组装HTML邮件报文
func buildMIMEMessage(from, to, subject, htmlBody string) string {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")
	return b.String()
}

// BuildEnquiryConfirmationHTML 生成咨询人确认邮件正文
func BuildEnquiryConfirmationHTML(enquiry *models.Enquiry, propertyTitle string) string {
	message := enquiry.Message
	if message == "" {
		message = "—"
	}

	return fmt.Sprintf(`
	<div style="font-family:Arial,sans-serif;max-width:600px;margin:auto;padding:20px;border:1px solid #e0e0e0;border-radius:8px">
	  <h2 style="color:#2c3e50">Thank you for your enquiry, %s!</h2>
	  <p>We have received your enquiry for <strong>%s</strong> and will get back to you shortly.</p>
	  <table style="width:100%%;border-collapse:collapse;margin:16px 0">
	    <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#888">Name</td><td style="padding:8px;border-bottom:1px solid #eee">%s</td></tr>
	    <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#888">Email</td><td style="padding:8px;border-bottom:1px solid #eee">%s</td></tr>
	    <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#888">Phone</td><td style="padding:8px;border-bottom:1px solid #eee">%s</td></tr>
	    <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#888">Message</td><td style="padding:8px;border-bottom:1px solid #eee">%s</td></tr>
	  </table>
	  <p style="color:#888;font-size:13px">If you did not submit this enquiry, please ignore this email.</p>
	</div>
	`, enquiry.Name, propertyTitle, enquiry.Name, enquiry.Email, enquiry.Phone, message)
}

// BuildEnquiryAdminNotificationHTML 生成管理员提醒邮件正文
func BuildEnquiryAdminNotificationHTML(enquiry *models.Enquiry, propertyTitle string) string {
	message := enquiry.Message
	if message == "" {
		message = "—"
	}

	return fmt.Sprintf(`
	<div style="font-family:Arial,sans-serif;max-width:600px;margin:auto;padding:20px;border:1px solid #e0e0e0;border-radius:8px">
	  <h2 style="color:#2c3e50">New Enquiry Received</h2>
	  <p>A new enquiry has been submitted for <strong>%s</strong>.</p>
	  <table style="width:100%%;border-collapse:collapse;margin:16px 0">
	    <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#888">Name</td><td style="padding:8px;border-bottom:1px solid #eee">%s</td></tr>
	    <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#888">Email</td><td style="padding:8px;border-bottom:1px solid #eee">%s</td></tr>
	    <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#888">Phone</td><td style="padding:8px;border-bottom:1px solid #eee">%s</td></tr>
	    <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#888">Message</td><td style="padding:8px;border-bottom:1px solid #eee">%s</td></tr>
	    <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#888">Property</td><td style="padding:8px;border-bottom:1px solid #eee">%s</td></tr>
	    <tr><td style="padding:8px;border-bottom:1px solid #eee;color:#888">Status</td><td style="padding:8px;border-bottom:1px solid #eee">%s</td></tr>
	  </table>
	</div>
	`, propertyTitle, enquiry.Name, enquiry.Email, enquiry.Phone, message, propertyTitle, enquiry.Status)
}
