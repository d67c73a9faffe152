package i18n

var english = map[string]string{
	"brand.name":    "PawsCare Veterinary Clinics",
	"brand.tagline": "Compassionate care for every paw",

	"nav.home":         "Home",
	"nav.services":     "Services",
	"nav.packages":     "Packages",
	"nav.reviews":      "Reviews",
	"nav.partners":     "Partners",
	"nav.contact":      "Contact",
	"nav.admin":        "Admin",
	"lang.toggle":      "العربية",
	"lang.toggle_code": "ar",

	"hero.title":    "Your pet's health, in expert hands",
	"hero.subtitle": "Modern veterinary care, vaccinations, surgery and grooming across our branches.",
	"hero.cta":      "Book a visit",
	"hero.discount": "Claim your opening discount",

	"services.title":             "Our services",
	"services.subtitle":          "Everything your companion needs under one roof",
	"services.checkups.title":    "Wellness check-ups",
	"services.checkups.body":     "Full physical examinations, weight tracking and nutrition advice at every stage of life.",
	"services.vaccination.title": "Vaccinations",
	"services.vaccination.body":  "Core and lifestyle vaccines on a schedule tailored to your pet, with digital reminders.",
	"services.surgery.title":     "Surgery",
	"services.surgery.body":      "Spaying, neutering and soft-tissue procedures in fully equipped operating rooms.",
	"services.dental.title":      "Dental care",
	"services.dental.body":       "Scaling, polishing and extractions under safe anaesthesia.",
	"services.grooming.title":    "Grooming",
	"services.grooming.body":     "Bathing, trimming and nail care by gentle, certified groomers.",
	"services.emergency.title":   "Emergency care",
	"services.emergency.body":    "Same-day urgent appointments and stabilisation when every minute counts.",

	"packages.title":    "Care packages",
	"packages.subtitle": "Simple yearly plans that keep your pet healthy",
	"packages.popular":  "Most popular",
	"packages.choose":   "Choose plan",
	"packages.empty":    "Packages are coming soon.",

	"reviews.title":    "What pet parents say",
	"reviews.subtitle": "Real stories from our clinics",
	"reviews.empty":    "No reviews yet.",
	"reviews.prev":     "Previous",
	"reviews.next":     "Next",

	"partners.title": "Our partners",
	"partners.empty": "Partner announcements coming soon.",

	"discount.badge":         "New branch",
	"discount.title":         "Opening discount",
	"discount.subtitle":      "Register now and your phone number becomes your discount code.",
	"discount.first_name":    "First name",
	"discount.last_name":     "Last name",
	"discount.phone":         "Phone number",
	"discount.email":         "Email address",
	"discount.submit":        "Get my discount",
	"discount.close":         "Close",
	"discount.success":       "You're registered! Check your inbox for your discount code.",
	"discount.phone_taken":   "This phone number is already registered.",
	"discount.email_taken":   "This email address has already been used.",
	"discount.phone_invalid": "Enter a 10 digit phone number.",
	"discount.email_invalid": "Enter a valid email address.",
	"discount.required":      "This field is required.",
	"discount.error":         "Something went wrong. Please try again.",

	"footer.rights":  "All rights reserved.",
	"footer.address": "King Fahd Road, Riyadh",
	"footer.credits": "Website by PawsCare Digital",

	"toast.saved":   "Saved successfully.",
	"toast.deleted": "Deleted.",
	"toast.error":   "The request failed. Please try again.",

	"admin.title":          "Back office",
	"admin.login.title":    "Sign in",
	"admin.login.username": "Username",
	"admin.login.password": "Password",
	"admin.login.submit":   "Sign in",
	"admin.login.failed":   "Invalid username or password.",
	"admin.logout":         "Sign out",
	"admin.dashboard":      "Dashboard",
	"admin.packages":       "Service packages",
	"admin.reviews":        "Customer reviews",
	"admin.partners":       "Partners",
	"admin.registrations":  "Opening discount registrations",
	"admin.create":         "Add new",
	"admin.edit":           "Edit",
	"admin.save":           "Save",
	"admin.cancel":         "Cancel",
	"admin.delete":         "Delete",
	"admin.delete_confirm": "Delete this item? This cannot be undone.",
	"admin.actions":        "Actions",
	"admin.empty":          "Nothing here yet.",
	"admin.count":          "Total",
	"admin.created":        "Created",
	"admin.upload":         "Upload logo",
	"admin.manage":         "Manage",

	"field.name":        "Name",
	"field.name_ar":     "Name (Arabic)",
	"field.price":       "Price",
	"field.period":      "Period",
	"field.period_ar":   "Period (Arabic)",
	"field.popular":     "Popular",
	"field.features":    "Features (one per line)",
	"field.features_ar": "Features in Arabic (one per line)",
	"field.rating":      "Rating",
	"field.message":     "Message",
	"field.logo":        "Logo",
	"field.first_name":  "First name",
	"field.last_name":   "Last name",
	"field.phone":       "Phone",
	"field.email":       "Email",

	"email.discount.subject":      "Your PawsCare opening discount",
	"email.discount.greeting":     "Hello %s,",
	"email.discount.intro":        "Thank you for registering for the opening of our new branch. Your discount is ready.",
	"email.discount.code_label":   "Your discount code",
	"email.discount.instructions": "Show this code at reception on your first visit. The discount applies once per phone number.",
	"email.discount.signoff":      "See you soon,\nThe PawsCare team",

	"admin.view_site": "View site",
	"admin.recent":    "Recent registrations",
	"admin.updated":   "Updated",
	"admin.invalid":   "Please check the highlighted fields.",
	"admin.uploading": "Uploading…",
	"field.language":  "Language",
	"notfound.back":   "Back to home",

	"notfound.title": "Page not found",
	"notfound.body":  "The page you are looking for does not exist.",
}
