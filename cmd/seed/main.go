package main

import (
	"log"
	"os"
	"time"

	"ai-support-be/internal/constant"
	"ai-support-be/internal/entity"
	"ai-support-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	var existing int64
	db.Model(&entity.KnowledgeEntry{}).Count(&existing)
	if existing > 0 {
		color.Yellow("Database already contains %d knowledge entries. Skipping seed.", existing)
		return
	}

	seedKnowledgeBase(db)
	seedSampleConversations(db)

	color.Green("Database seeding completed.")
}

func seedKnowledgeBase(db *gorm.DB) {
	articles := []entity.KnowledgeEntry{
		{
			Id:    uuid.New(),
			Title: "Return & Refund Policy",
			Content: `Our return policy allows you to return items within 30 days of purchase for a full refund. Items must be in original condition with tags attached. To initiate a return:
1. Log into your account and go to Order History
2. Select the order and click 'Request Return'
3. Print the prepaid return label
4. Ship the item back within 5 business days

Refunds are processed within 5-7 business days after we receive the return. The refund will be credited to your original payment method. If you paid with a gift card, the refund will be issued as store credit.`,
			Category:  "Returns",
			Tags:      "return,refund,exchange,policy,30 days",
			CreatedAt: time.Now(),
		},
		{
			Id:    uuid.New(),
			Title: "Shipping Information",
			Content: `We offer multiple shipping options:

Standard Shipping (3-5 business days): $5.99 or FREE on orders over $50
Express Shipping (2-3 business days): $12.99
Overnight Shipping (1 business day): $24.99

Orders placed before 2 PM EST ship the same day. You'll receive a tracking number via email once your order ships. Track your order anytime by logging into your account or clicking the tracking link in your shipping confirmation email.

We ship to all 50 US states and international locations. International shipping times vary by destination (typically 7-14 business days).`,
			Category:  "Shipping",
			Tags:      "shipping,delivery,tracking,express,standard,overnight,free shipping",
			CreatedAt: time.Now(),
		},
		{
			Id:    uuid.New(),
			Title: "Account Management & Password Reset",
			Content: `To reset your password:
1. Go to the login page and click 'Forgot Password'
2. Enter your email address
3. Check your email for a password reset link (valid for 24 hours)
4. Click the link and create a new password

Password requirements: At least 8 characters, including one uppercase letter, one number, and one special character.

To update your account information:
- Log into your account
- Click on 'Account Settings'
- Update your email, shipping address, or payment methods
- Click 'Save Changes'

If you're having trouble accessing your account, contact our support team with your order number and we'll help you regain access.`,
			Category:  "Account",
			Tags:      "account,login,password,reset,email,settings,profile",
			CreatedAt: time.Now(),
		},
		{
			Id:    uuid.New(),
			Title: "Product Specifications & Warranty",
			Content: `All our products come with detailed specifications on the product page. Look for the 'Specifications' tab for:
- Dimensions and weight
- Materials and composition
- Care instructions
- Color options
- Compatibility information

Warranty Information:
All products include a 1-year manufacturer's warranty covering defects in materials and workmanship. This does not cover normal wear and tear, misuse, or accidental damage.

To file a warranty claim:
1. Contact our support team with your order number
2. Provide photos of the defect
3. We'll review and either replace or repair the item

Extended warranty options are available at checkout for select items.`,
			Category:  "Products",
			Tags:      "product,specifications,specs,warranty,guarantee,quality,details",
			CreatedAt: time.Now(),
		},
	}

	for _, article := range articles {
		if err := db.Create(&article).Error; err != nil {
			color.Red("Error creating article '%s': %v", article.Title, err)
			continue
		}
		color.Green("Created knowledge entry: %s", article.Title)
	}
}

func seedSampleConversations(db *gorm.DB) {
	now := time.Now()

	resolvedAt := now.Add(-1 * time.Hour)
	conversations := []struct {
		conversation entity.Conversation
		messages     []entity.Message
	}{
		{
			conversation: entity.Conversation{
				Id:         uuid.New(),
				CustomerId: "customer_001",
				Status:     constant.ConversationStatusResolved,
				CreatedAt:  now.Add(-2 * time.Hour),
				ResolvedAt: &resolvedAt,
			},
			messages: []entity.Message{
				{
					Content:     "Hi, I'd like to know about your return policy",
					MessageType: constant.MessageTypeCustomer,
					CreatedAt:   now.Add(-2 * time.Hour),
				},
				{
					Content:         "Our return policy allows returns within 30 days of purchase for a full refund. Items must be in original condition. Would you like help initiating a return?",
					MessageType:     constant.MessageTypeFinal,
					ConfidenceScore: ptr(0.87),
					CreatedAt:       now.Add(-115 * time.Minute),
				},
			},
		},
		{
			conversation: entity.Conversation{
				Id:         uuid.New(),
				CustomerId: "customer_002",
				Status:     constant.ConversationStatusActive,
				CreatedAt:  now.Add(-30 * time.Minute),
			},
			messages: []entity.Message{
				{
					Content:     "My order hasn't arrived yet and it's been over a week. Order #12345",
					MessageType: constant.MessageTypeCustomer,
					CreatedAt:   now.Add(-30 * time.Minute),
				},
				{
					Content:         "I can help you track your order. Could you please provide your order number so I can check the shipping status?",
					MessageType:     constant.MessageTypeAIDraft,
					ConfidenceScore: ptr(0.55),
					CreatedAt:       now.Add(-29 * time.Minute),
				},
			},
		},
		{
			conversation: entity.Conversation{
				Id:         uuid.New(),
				CustomerId: "customer_003",
				Status:     constant.ConversationStatusEscalated,
				CreatedAt:  now.Add(-5 * time.Hour),
			},
			messages: []entity.Message{
				{
					Content:     "I received a damaged product and need a replacement immediately",
					MessageType: constant.MessageTypeCustomer,
					CreatedAt:   now.Add(-5 * time.Hour),
				},
				{
					Content:     "I understand your concern about the damaged product. Let me escalate this to a specialist who can process an immediate replacement for you.",
					MessageType: constant.MessageTypeAgentOnly,
					CreatedAt:   now.Add(-290 * time.Minute),
				},
			},
		},
	}

	for _, c := range conversations {
		if err := db.Create(&c.conversation).Error; err != nil {
			color.Red("Error creating conversation for %s: %v", c.conversation.CustomerId, err)
			continue
		}
		for _, m := range c.messages {
			m.Id = uuid.New()
			m.ConversationId = c.conversation.Id
			if err := db.Create(&m).Error; err != nil {
				color.Red("Error creating message: %v", err)
			}
		}
		color.Green("Created sample conversation for %s (%s)", c.conversation.CustomerId, c.conversation.Status)
	}
}

func ptr(f float64) *float64 {
	return &f
}
