package i18n

var arabic = map[string]string{
	"brand.name":    "عيادات باوز كير البيطرية",
	"brand.tagline": "رعاية حانية لكل كفّ",

	"nav.home":         "الرئيسية",
	"nav.services":     "الخدمات",
	"nav.packages":     "الباقات",
	"nav.reviews":      "آراء العملاء",
	"nav.partners":     "شركاؤنا",
	"nav.contact":      "تواصل معنا",
	"nav.admin":        "الإدارة",
	"lang.toggle":      "English",
	"lang.toggle_code": "en",

	"hero.title":    "صحة حيوانك الأليف بين أيدٍ خبيرة",
	"hero.subtitle": "رعاية بيطرية حديثة وتطعيمات وجراحة وعناية بالمظهر في جميع فروعنا.",
	"hero.cta":      "احجز موعداً",
	"hero.discount": "احصل على خصم الافتتاح",

	"services.title":             "خدماتنا",
	"services.subtitle":          "كل ما يحتاجه رفيقك تحت سقف واحد",
	"services.checkups.title":    "الفحوصات الدورية",
	"services.checkups.body":     "فحص سريري شامل ومتابعة الوزن ونصائح غذائية في كل مراحل العمر.",
	"services.vaccination.title": "التطعيمات",
	"services.vaccination.body":  "تطعيمات أساسية واختيارية بجدول يناسب حيوانك مع تذكيرات رقمية.",
	"services.surgery.title":     "الجراحة",
	"services.surgery.body":      "عمليات التعقيم والأنسجة الرخوة في غرف عمليات مجهزة بالكامل.",
	"services.dental.title":      "العناية بالأسنان",
	"services.dental.body":       "تنظيف وتلميع وخلع الأسنان تحت تخدير آمن.",
	"services.grooming.title":    "العناية بالمظهر",
	"services.grooming.body":     "استحمام وقص وتقليم أظافر على يد مختصين معتمدين.",
	"services.emergency.title":   "الطوارئ",
	"services.emergency.body":    "مواعيد عاجلة في نفس اليوم وإسعاف فوري عندما تكون كل دقيقة مهمة.",

	"packages.title":    "باقات الرعاية",
	"packages.subtitle": "خطط سنوية بسيطة تحافظ على صحة حيوانك",
	"packages.popular":  "الأكثر طلباً",
	"packages.choose":   "اختر الباقة",
	"packages.empty":    "الباقات قادمة قريباً.",

	"reviews.title":    "ماذا يقول عملاؤنا",
	"reviews.subtitle": "قصص حقيقية من عياداتنا",
	"reviews.empty":    "لا توجد آراء بعد.",
	"reviews.prev":     "السابق",
	"reviews.next":     "التالي",

	"partners.title": "شركاؤنا",
	"partners.empty": "سنعلن عن شركائنا قريباً.",

	"discount.badge":         "فرع جديد",
	"discount.title":         "خصم الافتتاح",
	"discount.subtitle":      "سجّل الآن ويصبح رقم جوالك هو رمز الخصم.",
	"discount.first_name":    "الاسم الأول",
	"discount.last_name":     "اسم العائلة",
	"discount.phone":         "رقم الجوال",
	"discount.email":         "البريد الإلكتروني",
	"discount.submit":        "احصل على الخصم",
	"discount.close":         "إغلاق",
	"discount.success":       "تم تسجيلك! تحقق من بريدك للحصول على رمز الخصم.",
	"discount.phone_taken":   "رقم الجوال هذا مسجل مسبقاً.",
	"discount.email_taken":   "تم استخدام هذا البريد الإلكتروني مسبقاً.",
	"discount.phone_invalid": "أدخل رقم جوال مكوناً من ١٠ أرقام.",
	"discount.email_invalid": "أدخل بريداً إلكترونياً صحيحاً.",
	"discount.required":      "هذا الحقل مطلوب.",
	"discount.error":         "حدث خطأ ما. حاول مرة أخرى.",

	"footer.rights":  "جميع الحقوق محفوظة.",
	"footer.address": "طريق الملك فهد، الرياض",

	"toast.saved":   "تم الحفظ بنجاح.",
	"toast.deleted": "تم الحذف.",
	"toast.error":   "فشل الطلب. حاول مرة أخرى.",

	"admin.title":          "لوحة التحكم",
	"admin.login.title":    "تسجيل الدخول",
	"admin.login.username": "اسم المستخدم",
	"admin.login.password": "كلمة المرور",
	"admin.login.submit":   "دخول",
	"admin.login.failed":   "اسم المستخدم أو كلمة المرور غير صحيحة.",
	"admin.logout":         "تسجيل الخروج",
	"admin.dashboard":      "الرئيسية",
	"admin.packages":       "باقات الخدمات",
	"admin.reviews":        "آراء العملاء",
	"admin.partners":       "الشركاء",
	"admin.registrations":  "تسجيلات خصم الافتتاح",
	"admin.create":         "إضافة جديد",
	"admin.edit":           "تعديل",
	"admin.save":           "حفظ",
	"admin.cancel":         "إلغاء",
	"admin.delete":         "حذف",
	"admin.delete_confirm": "هل تريد الحذف؟ لا يمكن التراجع عن ذلك.",
	"admin.actions":        "إجراءات",
	"admin.empty":          "لا يوجد شيء بعد.",
	"admin.count":          "الإجمالي",
	"admin.created":        "تاريخ الإنشاء",
	"admin.upload":         "رفع الشعار",
	"admin.manage":         "إدارة",

	"field.name":        "الاسم",
	"field.name_ar":     "الاسم بالعربية",
	"field.price":       "السعر",
	"field.period":      "المدة",
	"field.period_ar":   "المدة بالعربية",
	"field.popular":     "مميزة",
	"field.features":    "المزايا (سطر لكل ميزة)",
	"field.features_ar": "المزايا بالعربية (سطر لكل ميزة)",
	"field.rating":      "التقييم",
	"field.message":     "الرسالة",
	"field.logo":        "الشعار",
	"field.first_name":  "الاسم الأول",
	"field.last_name":   "اسم العائلة",
	"field.phone":       "الجوال",
	"field.email":       "البريد الإلكتروني",

	"email.discount.subject":      "خصم افتتاح باوز كير الخاص بك",
	"email.discount.greeting":     "مرحباً %s،",
	"email.discount.intro":        "شكراً لتسجيلك في افتتاح فرعنا الجديد. خصمك جاهز.",
	"email.discount.code_label":   "رمز الخصم الخاص بك",
	"email.discount.instructions": "أظهر هذا الرمز في الاستقبال عند زيارتك الأولى. يطبق الخصم مرة واحدة لكل رقم جوال.",
	"email.discount.signoff":      "نراك قريباً،\nفريق باوز كير",

	"admin.view_site": "عرض الموقع",
	"admin.recent":    "أحدث التسجيلات",
	"admin.updated":   "آخر تحديث",
	"admin.invalid":   "يرجى التحقق من الحقول المحددة.",
	"admin.uploading": "جارٍ الرفع…",
	"field.language":  "اللغة",
	"notfound.back":   "العودة إلى الرئيسية",

	"notfound.title": "الصفحة غير موجودة",
	"notfound.body":  "الصفحة التي تبحث عنها غير موجودة.",
}
