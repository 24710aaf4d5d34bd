package i18n

// Translations is the full string table of one language.
type Translations struct {
	// Header
	AppTitle      string
	Welcome       string
	Logout        string
	ExitGuestMode string

	// Guest banner
	GuestMode     string
	GuestModeDesc string
	CreateAccount string

	// Salary
	NetSalary         string
	SalaryPlaceholder string

	// Expenses
	FixedExpenses              string
	AddExpense                 string
	CategoryPlaceholder        string
	ExpenseCategoryPlaceholder string
	AmountPlaceholder          string

	// Incomes
	AdditionalIncome          string
	AddIncome                 string
	IncomeCategoryPlaceholder string

	// Summary
	TotalIncome           string
	Salary                string
	AdditionalIncomeLabel string
	TotalExpenses         string
	PercentageLabel       string
	AvailableMoney        string
	Suggestions           string
	SuggestSaving         string
	SuggestEmergency      string
	SuggestRemaining      string
	Warning               string
	WarningMessage        string

	// Guide
	GuideTitle   string
	GuideGood    string
	GuideWarning string
	GuideBad     string

	// Login
	SignIn                 string
	SignUp                 string
	ManageYourBudget       string
	Email                  string
	Password               string
	Loading                string
	Or                     string
	ContinueWithGoogle     string
	AlreadyHaveAccount     string
	DontHaveAccount        string
	ContinueWithoutAccount string
	DataSavedLocally       string

	// Errors
	EmailInUse     string
	InvalidEmail   string
	UserNotFound   string
	WrongPassword  string
	WeakPassword   string
	LoginCancelled string
	AuthError      string

	// Default categories
	DefaultExpenses []string
	DefaultIncomes  []string
}

var tables = map[Language]Translations{
	English: {
		AppTitle:      "Monthly Budget Manager",
		Welcome:       "Welcome",
		Logout:        "Logout",
		ExitGuestMode: "Exit guest mode",

		GuestMode:     "You're using guest mode",
		GuestModeDesc: "Your data is only saved on this device. Create an account to sync across all your devices.",
		CreateAccount: "Create Account",

		NetSalary:         "Monthly Net Salary (€)",
		SalaryPlaceholder: "e.g., 1500",

		FixedExpenses:              "Fixed Monthly Expenses",
		AddExpense:                 "Add Expense",
		CategoryPlaceholder:        "Category",
		ExpenseCategoryPlaceholder: "Category (e.g., Netflix)",
		AmountPlaceholder:          "€",

		AdditionalIncome:          "Additional Income",
		AddIncome:                 "Add Income",
		IncomeCategoryPlaceholder: "Category (e.g., Freelance)",

		TotalIncome:           "Total Income:",
		Salary:                "Salary",
		AdditionalIncomeLabel: "Additional income",
		TotalExpenses:         "Total Fixed Expenses:",
		PercentageLabel:       "Percentage of total income",
		AvailableMoney:        "Available Money (unallocated):",
		Suggestions:           "💡 Suggestions:",
		SuggestSaving:         "Consider saving 20%",
		SuggestEmergency:      "Create an emergency fund if you don't have one",
		SuggestRemaining:      "remaining for discretionary spending",
		Warning:               "Warning: your expenses exceed your income!",
		WarningMessage:        "You need to reduce expenses by",

		GuideTitle:   "📊 Percentage Guide:",
		GuideGood:    "Up to 50% - Excellent expense management",
		GuideWarning: "50-70% - Good management, but be careful",
		GuideBad:     "Over 70% - Expenses too high, try to reduce them",

		SignIn:                 "Sign In",
		SignUp:                 "Sign Up",
		ManageYourBudget:       "Manage your personal budget",
		Email:                  "Email",
		Password:               "Password",
		Loading:                "Loading...",
		Or:                     "or",
		ContinueWithGoogle:     "Continue with Google",
		AlreadyHaveAccount:     "Already have an account? Sign In",
		DontHaveAccount:        "Don't have an account? Sign Up",
		ContinueWithoutAccount: "Continue without account",
		DataSavedLocally:       "Data will be saved only on this device",

		EmailInUse:     "Email already in use",
		InvalidEmail:   "Invalid email",
		UserNotFound:   "User not found",
		WrongPassword:  "Wrong password",
		WeakPassword:   "Password too weak (minimum 6 characters)",
		LoginCancelled: "Login cancelled",
		AuthError:      "Authentication error",

		DefaultExpenses: []string{"Rent/Mortgage", "Utilities", "Transportation", "Groceries"},
		DefaultIncomes:  []string{"Freelance", "Rental Income"},
	},
	Italian: {
		AppTitle:      "Gestione Budget Mensile",
		Welcome:       "Benvenuto",
		Logout:        "Esci",
		ExitGuestMode: "Esci dalla modalità ospite",

		GuestMode:     "Stai usando la modalità ospite",
		GuestModeDesc: "I tuoi dati sono salvati solo su questo dispositivo. Crea un account per sincronizzarli su tutti i tuoi dispositivi.",
		CreateAccount: "Crea Account",

		NetSalary:         "Stipendio Netto Mensile (€)",
		SalaryPlaceholder: "Es: 1500",

		FixedExpenses:              "Spese Fisse Mensili",
		AddExpense:                 "Aggiungi Spesa",
		CategoryPlaceholder:        "Categoria",
		ExpenseCategoryPlaceholder: "Categoria (es: Netflix)",
		AmountPlaceholder:          "€",

		AdditionalIncome:          "Entrate Aggiuntive",
		AddIncome:                 "Aggiungi Entrata",
		IncomeCategoryPlaceholder: "Categoria (es: Freelance)",

		TotalIncome:           "Totale Entrate:",
		Salary:                "Stipendio",
		AdditionalIncomeLabel: "Entrate aggiuntive",
		TotalExpenses:         "Totale Spese Fisse:",
		PercentageLabel:       "Percentuale sulle entrate totali",
		AvailableMoney:        "Denaro Disponibile (non vincolato):",
		Suggestions:           "💡 Suggerimenti:",
		SuggestSaving:         "Considera di risparmiare il 20%",
		SuggestEmergency:      "Crea un fondo emergenze se non ce l'hai già",
		SuggestRemaining:      "per spese discrezionali",
		Warning:               "Attenzione: le tue spese superano le entrate!",
		WarningMessage:        "Devi ridurre le spese di",

		GuideTitle:   "📊 Guida alle percentuali:",
		GuideGood:    "Fino al 50% - Ottima gestione delle spese",
		GuideWarning: "50-70% - Buona gestione, ma attenzione",
		GuideBad:     "Oltre 70% - Spese troppo alte, cerca di ridurle",

		SignIn:                 "Accedi",
		SignUp:                 "Registrati",
		ManageYourBudget:       "Gestisci il tuo budget personale",
		Email:                  "Email",
		Password:               "Password",
		Loading:                "Caricamento...",
		Or:                     "oppure",
		ContinueWithGoogle:     "Continua con Google",
		AlreadyHaveAccount:     "Hai già un account? Accedi",
		DontHaveAccount:        "Non hai un account? Registrati",
		ContinueWithoutAccount: "Continua senza account",
		DataSavedLocally:       "I dati saranno salvati solo su questo dispositivo",

		EmailInUse:     "Email già in uso",
		InvalidEmail:   "Email non valida",
		UserNotFound:   "Utente non trovato",
		WrongPassword:  "Password errata",
		WeakPassword:   "Password troppo debole (minimo 6 caratteri)",
		LoginCancelled: "Login annullato",
		AuthError:      "Errore durante l'autenticazione",

		DefaultExpenses: []string{"Affitto/Mutuo", "Bollette", "Trasporti", "Spesa alimentare"},
		DefaultIncomes:  []string{"Freelance", "Affitti"},
	},
}

// For returns the string table of lang, or the default language's table for
// an unsupported tag.
func For(lang Language) Translations {
	if t, ok := tables[lang]; ok {
		return t
	}
	return tables[DefaultLanguage]
}

// ErrorCode is one of the closed set of identity-provider failures that have
// a user-facing message.
type ErrorCode string

const (
	CodeEmailInUse     ErrorCode = "email-already-in-use"
	CodeInvalidEmail   ErrorCode = "invalid-email"
	CodeUserNotFound   ErrorCode = "user-not-found"
	CodeWrongPassword  ErrorCode = "wrong-password"
	CodeWeakPassword   ErrorCode = "weak-password"
	CodeCancelled      ErrorCode = "popup-closed-by-user"
	CodeAuthentication ErrorCode = "auth-error"
)

// ErrorMessage returns the localized message for an identity-provider code.
// Unknown codes get the generic authentication message.
func ErrorMessage(lang Language, code ErrorCode) string {
	t := For(lang)
	switch code {
	case CodeEmailInUse:
		return t.EmailInUse
	case CodeInvalidEmail:
		return t.InvalidEmail
	case CodeUserNotFound:
		return t.UserNotFound
	case CodeWrongPassword:
		return t.WrongPassword
	case CodeWeakPassword:
		return t.WeakPassword
	case CodeCancelled:
		return t.LoginCancelled
	default:
		return t.AuthError
	}
}
