// Package chat answers visitor questions from a fixed keyword table.
package chat

import (
	"fmt"
	"strings"
)

// Hospital holds the facts quoted by the canned replies.
type Hospital struct {
	Name          string
	Address       string
	Email         string
	CustomerCare  string
	CrossWhatsApp string
	CEOContact    string
	Founder       string
	CEO           string
}

// Samparc is the facility served by this deployment.
var Samparc = Hospital{
	Name:          "SAMPARC MEDICAL",
	Address:       "Nearby Malavali Railway Station, Samparc Malavali Campus, Near Malavli, Malavli, Maharashtra 410405",
	Email:         "samparc6@gmail.com",
	CustomerCare:  "+91 9766343454",
	CrossWhatsApp: "+91 9270556455",
	CEOContact:    "+91 9766343456",
	Founder:       "AMITKUMAR BANERJEE",
	CEO:           "ANUJ SINGH",
}

type rule struct {
	keywords []string
	reply    string
}

// Responder matches lower-cased input against its rules in order.
type Responder struct {
	rules     []rule
	fallbacks []rule
	def       string
}

// Reply returns the first rule whose any keyword occurs in message, then the
// health advisories, then the default answer.
func (r *Responder) Reply(message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))
	for _, set := range [][]rule{r.rules, r.fallbacks} {
		for _, ru := range set {
			for _, kw := range ru.keywords {
				if strings.Contains(msg, kw) {
					return ru.reply
				}
			}
		}
	}
	return r.def
}

// New builds the responder for h.
func New(h Hospital) *Responder {
	cc := h.CustomerCare
	return &Responder{
		rules: []rule{
			{
				keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening", "namaste"},
				reply:    fmt.Sprintf("Hello! Welcome to **%s** 🏥\n\nI'm your virtual health assistant. I'm here to help you with information about our hospital, services, medicines, and more.\n\nHow can I assist you today?", h.Name),
			},
			{
				keywords: []string{"address", "location", "where", "directions", "how to reach", "find", "place"},
				reply:    fmt.Sprintf("📍 **%s Location:**\n\n%s\n\nWe are conveniently located near Malavali Railway Station, making us easily accessible by train and road.\n\nFor directions, you can call us at **%s**.", h.Name, h.Address, cc),
			},
			{
				keywords: []string{"contact", "phone", "call", "number", "reach", "helpline"},
				reply:    fmt.Sprintf("📞 **Contact %s:**\n\n• **Customer Care:** %s\n• **WhatsApp:** %s\n• **CEO Direct:** %s\n• **Email:** %s\n\nOur team is available to assist you. Feel free to call or WhatsApp us!", h.Name, cc, cc, h.CEOContact, h.Email),
			},
			{
				keywords: []string{"whatsapp", "chat", "message", "text"},
				reply:    fmt.Sprintf("💬 **WhatsApp %s:**\n\n• **Customer Care WhatsApp:** %s\n• **Cross WhatsApp:** %s\n• **CEO WhatsApp:** %s\n\nClick the WhatsApp button on our Contact page to start a chat instantly!", h.Name, cc, h.CrossWhatsApp, h.CEOContact),
			},
			{
				keywords: []string{"email", "mail", "write"},
				reply:    fmt.Sprintf("📧 **Email Us:**\n\n**%s**\n\nYou can email us for appointments, queries, or feedback. We typically respond within 24 hours.", h.Email),
			},
			{
				keywords: []string{"service", "services", "treatment", "facility", "facilities", "offer", "provide"},
				reply:    fmt.Sprintf("🏥 **%s Services:**\n\n• 🩺 **General Medicine** - Comprehensive primary care\n• 🚨 **Emergency Care** - 24/7 emergency services\n• 💊 **Pharmacy** - Full-service medicine dispensary\n• 🔬 **Diagnostics** - Advanced lab & imaging\n• 👨‍⚕️ **Patient Consultation** - Expert specialist consultations\n• 🏥 **Preventive Healthcare** - Health checkups & wellness\n• 🧪 **Pathology Lab** - Accurate diagnostic testing\n• 💉 **Vaccination** - Immunization services\n\nFor more details, visit our **Services** page or call **%s**.", h.Name, cc),
			},
			{
				keywords: []string{"medicine", "medicines", "drug", "drugs", "pharmacy", "tablet", "capsule", "syrup"},
				reply:    fmt.Sprintf("💊 **%s Pharmacy:**\n\nWe maintain a comprehensive pharmacy with a wide range of medicines including:\n\n• Prescription medicines\n• Over-the-counter drugs\n• Generic medicines\n• Ayurvedic products\n• Health supplements\n\nVisit our **Medicines** page to browse our catalog, or call **%s** for availability.", h.Name, cc),
			},
			{
				keywords: []string{"timing", "time", "hours", "open", "close", "schedule", "when"},
				reply:    fmt.Sprintf("⏰ **%s Timings:**\n\n• **OPD Hours:** 8:00 AM – 8:00 PM (Mon–Sat)\n• **Emergency:** 24/7 Available\n• **Pharmacy:** 8:00 AM – 10:00 PM (Daily)\n• **Sunday:** Emergency services only\n\nFor appointments, call **%s**.", h.Name, cc),
			},
			{
				keywords: []string{"appointment", "book", "schedule", "consult", "doctor", "visit"},
				reply:    fmt.Sprintf("📅 **Book an Appointment:**\n\nTo schedule a consultation at %s:\n\n1. 📞 Call us: **%s**\n2. 💬 WhatsApp: **%s**\n3. 📧 Email: **%s**\n\nOur team will confirm your appointment and guide you through the process.", h.Name, cc, cc, h.Email),
			},
			{
				keywords: []string{"founder", "amitkumar", "banerjee", "director", "secretary"},
				reply:    fmt.Sprintf("👨‍💼 **About Our Founder:**\n\n**%s** - Founder Director & Secretary\n\nMr. Amitkumar Banerjee is a visionary healthcare leader who founded %s with a mission to provide accessible, quality healthcare to the community. With decades of experience in healthcare management, he has built %s into a trusted institution.\n\nHis dedication to patient welfare and community health has been the cornerstone of our hospital's success.", h.Founder, h.Name, h.Name),
			},
			{
				keywords: []string{"ceo", "anuj", "singh", "chief executive"},
				reply:    fmt.Sprintf("👨‍💼 **About Our CEO:**\n\n**%s** - Chief Executive Officer\n\nMr. Anuj Singh leads %s with strategic vision and operational excellence. Under his leadership, the hospital has expanded its services and embraced modern medical technologies.\n\nHis commitment to quality healthcare and patient satisfaction drives the hospital's continuous growth and improvement.\n\n📞 CEO Contact: **%s**", h.CEO, h.Name, h.CEOContact),
			},
			{
				keywords: []string{"emergency", "urgent", "ambulance", "critical", "accident"},
				reply:    fmt.Sprintf("🚨 **EMERGENCY SERVICES:**\n\n**%s provides 24/7 Emergency Care!**\n\n📞 **Emergency Helpline: %s**\n\nOur emergency team is always ready to assist you. Please call immediately for:\n• Accidents & trauma\n• Cardiac emergencies\n• Breathing difficulties\n• Severe injuries\n\n⚠️ For life-threatening emergencies, also call **108** (National Ambulance).", h.Name, cc),
			},
			{
				keywords: []string{"price", "cost", "fee", "charge", "rate", "affordable", "cheap"},
				reply:    fmt.Sprintf("💰 **%s Pricing:**\n\nWe believe quality healthcare should be affordable. Our services are competitively priced:\n\n• Consultation fees vary by specialist\n• Medicines at competitive market rates\n• Diagnostic tests at affordable prices\n• Insurance accepted (most major providers)\n\nFor specific pricing, please call **%s** or visit our pharmacy.", h.Name, cc),
			},
			{
				keywords: []string{"insurance", "cashless", "mediclaim", "tpa"},
				reply:    fmt.Sprintf("🏥 **Insurance & Cashless Facility:**\n\n%s accepts most major health insurance plans. We offer:\n\n• Cashless treatment facility\n• Mediclaim assistance\n• TPA coordination\n• Insurance claim support\n\nFor insurance queries, contact us at **%s**.", h.Name, cc),
			},
			{
				keywords: []string{"covid", "corona", "vaccination", "vaccine", "immunization"},
				reply:    fmt.Sprintf("💉 **Vaccination Services at %s:**\n\nWe provide comprehensive vaccination services including:\n\n• COVID-19 vaccination\n• Routine immunizations\n• Travel vaccines\n• Flu shots\n• Pediatric vaccines\n\nContact us at **%s** to schedule your vaccination.", h.Name, cc),
			},
			{
				keywords: []string{"blood", "test", "lab", "pathology", "report", "diagnostic"},
				reply:    fmt.Sprintf("🔬 **Diagnostic & Lab Services:**\n\n%s offers comprehensive diagnostic services:\n\n• Blood tests & CBC\n• Urine analysis\n• X-Ray & Imaging\n• ECG & Cardiac tests\n• Thyroid & Hormone tests\n• Diabetes screening\n• Full body checkup packages\n\nFor test bookings, call **%s**.", h.Name, cc),
			},
			{
				keywords: []string{"thank", "thanks", "thank you", "great", "helpful", "good"},
				reply:    fmt.Sprintf("😊 **You're welcome!**\n\nThank you for choosing %s. We're committed to your health and well-being.\n\nIf you have any more questions, feel free to ask! You can also reach us at:\n📞 **%s**\n\n*Your Health, Our Mission* 🏥", h.Name, cc),
			},
			{
				keywords: []string{"bye", "goodbye", "see you", "take care"},
				reply:    fmt.Sprintf("👋 **Goodbye!**\n\nThank you for visiting %s. Take care of your health!\n\nRemember, we're always here for you:\n📞 **%s**\n\n*Stay healthy, stay happy!* 🌟", h.Name, cc),
			},
		},
		fallbacks: []rule{
			{
				keywords: []string{"fever", "cold", "cough"},
				reply:    fmt.Sprintf("🤒 **Health Advisory:**\n\nFor fever, cold, or cough symptoms:\n\n• Stay hydrated and rest\n• Monitor your temperature\n• Take prescribed medications\n• Consult a doctor if symptoms persist for more than 3 days\n\n⚠️ **Please consult our doctors for proper diagnosis and treatment.**\n\n📞 Call us: **%s**", cc),
			},
			{
				keywords: []string{"diabetes", "sugar", "blood sugar"},
				reply:    fmt.Sprintf("🩺 **Diabetes Information:**\n\nDiabetes management tips:\n\n• Monitor blood sugar regularly\n• Follow a balanced diet\n• Exercise regularly\n• Take medications as prescribed\n• Regular HbA1c tests\n\n**%s offers comprehensive diabetes care.**\n📞 Book consultation: **%s**", h.Name, cc),
			},
			{
				keywords: []string{"heart", "cardiac", "chest pain"},
				reply:    fmt.Sprintf("❤️ **Cardiac Health:**\n\n⚠️ **If you're experiencing chest pain, call emergency services immediately!**\n\nFor cardiac care at %s:\n• ECG & cardiac monitoring\n• Cardiologist consultations\n• Preventive cardiac checkups\n\n🚨 **Emergency: %s**", h.Name, cc),
			},
		},
		def: fmt.Sprintf("🤔 I'm not sure about that specific query, but I'm here to help!\n\n**%s** is your trusted healthcare partner. For detailed information:\n\n📞 **Call us:** %s\n💬 **WhatsApp:** %s\n📧 **Email:** %s\n\nYou can ask me about:\n• Hospital location & timings\n• Our services & facilities\n• Medicines & pharmacy\n• Appointments & consultations\n• Contact information\n\n*Your Health, Our Mission* 🏥", h.Name, cc, cc, h.Email),
	}
}
