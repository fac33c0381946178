package assistant

import (
	"math"
	"strings"

	"github.com/schollz/closestmatch"
	"github.com/staffledger/hrpay-backend-go/internal/domain/assistant"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// topic couples trigger keywords with the canned body they select.
type topic struct {
	keywords []string
	body     string
}

// catalog holds the topics for one request type in match priority
// order, plus the generic body used when nothing matches. A bag-of-words
// matcher over all keywords backs the fuzzy pass.
type catalog struct {
	topics  []topic
	generic string
	matcher *closestmatch.ClosestMatch
}

// fuzzyThreshold is the minimum Levenshtein similarity for a misspelled
// keyword to still count as a hit.
const fuzzyThreshold = 0.7

func newCatalog(topics []topic, generic string) *catalog {
	var keywords []string
	for _, t := range topics {
		keywords = append(keywords, t.keywords...)
	}

	return &catalog{
		topics:  topics,
		generic: generic,
		matcher: closestmatch.New(keywords, []int{2, 3}),
	}
}

// lookup picks the body for a normalized (trimmed, lowercased) context.
// Exact substring hits win, in catalog order. Otherwise the closest
// keyword by bag-of-words is accepted when its similarity to some
// window of the context clears the threshold.
func (c *catalog) lookup(normalized string) string {
	for _, t := range c.topics {
		for _, keyword := range t.keywords {
			if strings.Contains(normalized, keyword) {
				return t.body
			}
		}
	}

	if closest := c.matcher.Closest(normalized); closest != "" {
		if bestWindowSimilarity(normalized, closest) > fuzzyThreshold {
			for _, t := range c.topics {
				for _, keyword := range t.keywords {
					if keyword == closest {
						return t.body
					}
				}
			}
		}
	}

	return c.generic
}

// bestWindowSimilarity slides a window of the keyword's word count over
// the context and returns the highest similarity seen, so a keyword can
// match inside a longer sentence.
func bestWindowSimilarity(context, keyword string) float64 {
	words := strings.Fields(context)
	size := len(strings.Fields(keyword))
	if size == 0 || len(words) == 0 {
		return 0
	}
	if size > len(words) {
		return calculateSimilarity(strings.Join(words, " "), keyword)
	}

	best := 0.0
	for i := 0; i+size <= len(words); i++ {
		window := strings.Join(words[i:i+size], " ")
		if s := calculateSimilarity(window, keyword); s > best {
			best = s
		}
	}
	return best
}

// calculateSimilarity maps Levenshtein distance to a 0..1 score, where
// 1 means identical strings.
func calculateSimilarity(s1, s2 string) float64 {
	maxLen := math.Max(float64(len(s1)), float64(len(s2)))
	if maxLen == 0 {
		return 1.0
	}

	distance := levenshtein.DistanceForStrings([]rune(s1), []rune(s2), levenshtein.DefaultOptions)
	return 1.0 - float64(distance)/maxLen
}

var emailCatalog = newCatalog(
	[]topic{
		{
			keywords: []string{"salary credit"},
			body: "Subject: Salary Credit Confirmation\n\n" +
				"Dear [Employee Name],\n\n" +
				"This is to inform you that your salary for the month has been " +
				"processed and credited to your registered bank account.\n" +
				"If you notice any discrepancy in the credited amount, please " +
				"reach out to HR/Payroll within 2 working days.\n",
		},
		{
			keywords: []string{"leave approval"},
			body: "Subject: Leave Request – Approval\n\n" +
				"Dear [Employee Name],\n\n" +
				"Your leave request has been reviewed and approved as per the " +
				"details shared in your application.\n" +
				"Kindly ensure proper handover of your ongoing tasks before " +
				"proceeding on leave.\n",
		},
		{
			keywords: []string{"leave rejection"},
			body: "Subject: Leave Request – Regret\n\n" +
				"Dear [Employee Name],\n\n" +
				"This is with reference to your recent leave request.\n" +
				"We regret to inform you that the request cannot be approved " +
				"due to business/operational requirements during the requested period.\n" +
				"You may discuss with your manager and raise a fresh request " +
				"for alternate dates, if required.\n",
		},
		{
			keywords: []string{"warning", "late coming"},
			body: "Subject: Advisory on Late Coming\n\n" +
				"Dear [Employee Name],\n\n" +
				"It has been observed that there are repeated instances of late " +
				"reporting to work.\n" +
				"You are requested to adhere strictly to the prescribed office " +
				"timings. Continued non‑compliance may lead to further action " +
				"as per company policy.\n",
		},
	},
	"Subject: HR Communication\n\n"+
		"Dear [Employee Name],\n\n"+
		"This is a system‑generated HR communication based on your request.\n",
)

var policyCatalog = newCatalog(
	[]topic{
		{
			keywords: []string{"leave policy", "cl", "sl"},
			body: "Leave Policy (CL, SL and LOP) – Draft\n\n" +
				"1. Casual Leave (CL): Granted for short‑term personal reasons with prior approval.\n" +
				"2. Sick Leave (SL): Applicable in case of medical illness; medical proof may be requested.\n" +
				"3. Loss of Pay (LOP): Applied when leave exceeds available balance or is unapproved.\n" +
				"4. All leave requests must be recorded in the HR system and approved by the reporting manager.\n",
		},
		{
			keywords: []string{"payroll policy"},
			body: "Basic Payroll Policy – Draft\n\n" +
				"1. Salaries are processed monthly and credited to employees’ bank accounts.\n" +
				"2. Statutory deductions such as PF, ESI and Professional Tax are applied as per regulations.\n" +
				"3. Any adjustments for LOP, incentives or arrears are reflected in the same or subsequent month.\n",
		},
		{
			keywords: []string{"attendance", "late coming"},
			body: "Attendance and Late Coming Policy – Draft\n\n" +
				"1. Employees must follow the defined shift/office timings.\n" +
				"2. Late coming beyond the grace period may be adjusted against leave or treated as LOP.\n" +
				"3. Attendance must be recorded through the official system (biometric/portal).\n",
		},
		{
			keywords: []string{"work from home"},
			body: "Work From Home (WFH) Policy – Draft\n\n" +
				"1. WFH is allowed only with prior manager approval except in emergencies.\n" +
				"2. Employees must be available during working hours on official communication channels.\n" +
				"3. Daily work updates and task status must be shared with the reporting manager.\n",
		},
	},
	"Draft HR policy based on the given context.\n",
)

var formulaCatalog = newCatalog(
	[]topic{
		{
			keywords: []string{"pf"},
			body: "PF Calculation Suggestion:\n" +
				"PF = Basic Salary × PF% / 100\n" +
				"Example: If Basic Salary = ₹30,000 and PF% = 12, PF = 30,000 × 12 / 100 = ₹3,600.\n",
		},
		{
			keywords: []string{"esi"},
			body: "ESI Deduction Logic:\n" +
				"ESI = Gross Salary × ESI% / 100 (subject to eligibility and statutory wage limits).\n",
		},
		{
			keywords: []string{"lop"},
			body: "LOP Salary Deduction Formula:\n" +
				"Per‑day salary = Gross Salary / Total Working Days.\n" +
				"LOP Amount = Per‑day salary × LOP Days.\n",
		},
		{
			keywords: []string{"gross to net", "net salary"},
			body: "Gross to Net Salary Calculation:\n" +
				"Net Salary = Gross Salary – (PF + ESI + PT + other deductions).\n",
		},
	},
	"Payroll formula suggestion based on the given context.\n",
)

// fromTemplates renders the canned answer for a validated request.
// Matching runs on the trimmed, lowercased context; additional info is
// appended verbatim in the section each request type uses for it.
func fromTemplates(req assistant.GenerateRequest) string {
	normalized := strings.ToLower(strings.TrimSpace(req.Context))

	extra := ""
	if req.AdditionalInfo != nil {
		extra = strings.TrimSpace(*req.AdditionalInfo)
	}

	switch req.RequestType {
	case assistant.RequestTypeEmailTemplate:
		body := emailCatalog.lookup(normalized)
		if extra != "" {
			body += "\nAdditional details: " + extra + "\n"
		}
		return body + "\nRegards,\nHR Team"

	case assistant.RequestTypePolicy:
		body := policyCatalog.lookup(normalized)
		if extra != "" {
			body += "\nContext: " + extra + "\n"
		}
		return body

	default:
		body := formulaCatalog.lookup(normalized)
		if extra != "" {
			body += "\nData/Notes: " + extra + "\n"
		}
		return body
	}
}
