package ingest

import (
	"github.com/google/uuid"

	"github.com/sells-group/npd-cli/internal/model"
)

// sample is a curated friction post used when live search is unavailable.
type sample struct {
	issue     string
	intensity float64
	frequency float64
	url       string
	text      string
	meta      string
}

const competitorGap = "Competitor review gap (Amazon/Flipkart)"

var samples = map[model.Brand][]sample{
	model.BrandManMatters: {
		{"Hard Water Hair Fall", 9, 47, "https://reddit.com/r/IndianSkincareAddicts/comments/sim_hard_water_hair",
			"Nothing works for my hair in Bangalore water. I've tried every shampoo and serum. Hard water is destroying my scalp and I'm losing so much hair. Desperate for something that actually works. Alternative to [Brand X]?",
			"r/IndianSkincareAddicts"},
		{"Patchy Beard Gaps", 8, 28, "https://reddit.com/r/mensgrooming/comments/sim_patchy_beard",
			"Patchy beard won't fill in. Used minoxidil for 6 months, barely any change. Don't want to give up but frustrated. Need something that actually targets the gaps.",
			"r/mensgrooming"},
		{"Dandruff Persistence Despite Treatment", 9, 38, "https://reddit.com/r/IndianSkincareAddicts/comments/sim_dandruff",
			"Ketoconazole didn't work. Zinc pyrithione made it worse. I'm crying at this point. Need a leave-on that actually gets rid of flakes. Nothing works.",
			competitorGap},
		{"Performance Anxiety — No Discreet Supplement", 8, 22, "https://reddit.com/r/menshealth/comments/sim_performance",
			"Tried ashwagandha but inconsistent results. No discreet, clinically backed men's performance supplement available in India. Embarrassing to buy offline. Desperate.",
			"r/menshealth"},
		{"Scalp Microbiome Imbalance", 7, 19, "https://trends.google.com/trends/explore?q=scalp+microbiome+India",
			"Rising searches: 'scalp probiotic India', 'microbiome shampoo men', 'scalp health serum'. Up 160% YoY.",
			"India"},
		{"Stress-Induced Hair Loss at 25", 8, 33, "https://reddit.com/r/IndianMaleHealth/comments/sim_stress_hair",
			"Work stress is destroying my hairline. Temples receding at 26. Cortisol through the roof. Nothing topical works — need something that addresses root cause internally.",
			"r/IndianMaleHealth"},
		{"Beard Itch — No Lightweight Solution", 7, 24, "https://reddit.com/r/mensgrooming/comments/sim_beard_itch",
			"Growing a beard but the itch is unbearable in the first 3 weeks. Tried beard oils but they're too greasy and smell artificial. Stopped using them. Need lightweight, non-greasy under-beard skin care.",
			"r/mensgrooming"},
		{"Crown Thinning — No Targeted Product", 9, 41, "https://reddit.com/r/IndianMaleHealth/comments/sim_crown_thinning",
			"Crown thinning is accelerating and no product specifically targets that area. Most serums are generic scalp products. Amazon competitor reviews show huge gaps — users say 'didn't work for crown'.",
			competitorGap},
		{"Men's Anti-Aging — No Simple Routine", 7, 21, "https://reddit.com/r/IndianSkincareAddicts/comments/sim_men_antiaging",
			"Fine lines at 29 — gym sweat and Delhi pollution wrecking my skin. Men's skincare in India is just aftershave. Need a simple anti-aging routine for Indian men that takes under 2 minutes.",
			"r/IndianSkincareAddicts"},
		{"Post-Gym Recovery Supplement Gap", 7, 29, "https://trends.google.com/trends/explore?q=recovery+supplement+men+india",
			"Search surge: 'post workout recovery India', 'muscle soreness supplement men', 'natural recovery drink India'. Rising 150% YoY. High demand, low clinical credibility in existing products.",
			"India"},
	},
	model.BrandBeBodywise: {
		{"Hormonal Acne Post-Workout", 8, 32, "https://reddit.com/r/IndianSkincareAddicts/comments/sim_hormonal_acne",
			"Hormonal acne flares up every time after gym. Tried everything—niacinamide, salicylic, adapalene. Still have breakouts. Too expensive to keep buying actives that don't work. Any recommendations?",
			"r/IndianSkincareAddicts"},
		{"PCOS Weight Plateau Despite Low-GI Diet", 9, 41, "https://reddit.com/r/PCOS/comments/sim_pcos_weight",
			"Following a low-GI diet for PCOS for 4 months — no change. Desperate. Doctor says metformin but I want a supplement approach first. Frustrated and giving up on finding something affordable.",
			"r/PCOS"},
		{"Strawberry Skin / KP Body Lotion Gap", 7, 41, "https://trends.google.com/trends/explore?q=strawberry%20skin%20india",
			"Searches: 'strawberry skin treatment', 'keratosis pilaris body lotion India', 'bumpy skin remedy'. Rising 180% YoY in India.",
			"India"},
		{"Period Pain — OTC Solutions Not Working", 8, 28, "https://reddit.com/r/TwoXIndia/comments/sim_period_pain",
			"Dysmenorrhea is ruining my life. OTC painkillers stopped working. Tried women's health supplements — nothing works. Please help. Any women who've found something that actually helps?",
			"r/TwoXIndia"},
		{"Brightening Serum for South Asian Skin Tones", 7, 22, "https://reddit.com/r/IndianSkincareAddicts/comments/sim_brightening",
			"Most brightening serums formulated for light Caucasian skin. Nothing for deeper Indian skin tones without bleaching effect. Competitor gap on Amazon India.",
			competitorGap},
		{"Skin Barrier Damage from Over-Exfoliation", 7, 24, "https://reddit.com/r/IndianSkincareAddicts/comments/sim_barrier",
			"Destroyed my skin barrier trying too many actives. Everything stings now. Tried ceramide creams but nothing restoring it fast enough. Desperate for a barrier repair solution that actually works.",
			"r/IndianSkincareAddicts"},
		{"Humidity-Proof Sunscreen Gap for Women", 7, 30, "https://trends.google.com/trends/explore?q=sunscreen+humid+india+women",
			"Searches: 'sunscreen for humid weather India', 'no white cast sunscreen women', 'sweat proof SPF India'. Rising 165% YoY. Women want SPF that doesn't pill under makeup in humidity.",
			"India"},
		{"PCOS Hair Thinning — Hormonal Root Cause Unaddressed", 8, 26, "https://reddit.com/r/PCOS/comments/sim_pcos_hair",
			"PCOS is causing massive hair thinning. Minoxidil made it worse. Biotin didn't work. Need something that addresses hormonal root cause of hair loss in women, not just topicals.",
			"r/PCOS"},
		{"Intimate Hygiene — No Affordable pH-Balanced Option", 6, 19, "https://reddit.com/r/TwoXIndia/comments/sim_intimate",
			"No good pH-balanced intimate wash in India that isn't overpriced or full of fragrance. Competitor reviews show massive dissatisfaction. Market gap for affordable, gentle, fragrance-free option.",
			competitorGap},
		{"Gut-Skin Link — PCOS Synbiotic Gap", 7, 21, "https://reddit.com/r/PCOS/comments/sim_gut_pcos",
			"Doctor says my gut microbiome is affecting PCOS symptoms and skin. Can't find a synbiotic specifically for women with PCOS. Everything out there is generic gut health with no hormonal focus.",
			"r/PCOS"},
	},
	model.BrandLittleJoys: {
		{"Kids Height Growth Stagnation", 9, 44, "https://reddit.com/r/IndianParenting/comments/sim_height_growth",
			"My 6-year-old isn't growing as expected. Pediatrician says nutrition is key but I can't get him to eat vegetables. Tried everything — gummies, powders, nothing works. Any recommendations from other moms?",
			"r/IndianParenting"},
		{"Toddler Iron Deficiency Anxiety", 8, 31, "https://reddit.com/r/Mommit/comments/sim_iron",
			"Pediatrician flagged low iron in my toddler. The supplements taste horrible and she refuses. Crying every dose time. Desperate for a kids-friendly iron supplement that doesn't taste like metal.",
			"r/Mommit"},
		{"Post-Monsoon Immunity Sick Cycles", 8, 29, "https://reddit.com/r/IndianParenting/comments/sim_immunity",
			"Every monsoon my kids get sick back-to-back. Started them on Vitamin C + Zinc but it didn't work. Too expensive to keep buying supplements that don't hold. Need budget-friendly immunity booster for children.",
			"r/IndianParenting"},
		{"Fussy Eater Nutrition Gap", 7, 38, "https://trends.google.com/trends/explore?q=nutrition+supplement+kids+india",
			"Search spike: 'nutrition powder for kids India', 'healthy snacks for picky eaters', 'hidden vegetable recipes toddlers'. Rising 210% YoY.",
			"India"},
		{"Kids Omega-3 Fishy Aftertaste Problem", 7, 25, "https://reddit.com/r/BabyBumps/comments/sim_omega3",
			"No good kids omega-3 on Amazon India without fishy aftertaste. Parents frustrated — stopped giving after children refused. Need a palatable DHA for kids 2–8.",
			competitorGap},
		{"Kids Chronic Constipation — No Safe Probiotic", 8, 33, "https://reddit.com/r/IndianParenting/comments/sim_gut_kids",
			"My 4-year-old has chronic constipation. Tried Isabgol, prune juice, nothing works long-term. Need a daily probiotic safe for kids — all available ones are adult formulations.",
			"r/IndianParenting"},
		{"Screen Time Eye Strain in Children", 6, 22, "https://trends.google.com/trends/explore?q=kids+eye+health+screen+time+india",
			"Searches: 'kids eye vitamin India', 'lutein gummies children', 'screen time eye drops kids'. Rising 190% YoY. Parents increasingly concerned about tablet/phone screen impact on children's vision.",
			"India"},
		{"Sugar-Free Kids Vitamins Unavailable", 7, 27, "https://reddit.com/r/IndianParenting/comments/sim_sugar_free",
			"Every kids supplement on Amazon is loaded with sugar or artificial sweeteners. My dentist says gummies are causing cavities. Why can't someone make a zero-sugar vitamin for kids that actually tastes good?",
			"r/IndianParenting"},
		{"Post-Partum Recovery — Iron Causes Constipation", 8, 20, "https://reddit.com/r/Mommit/comments/sim_postpartum",
			"6 weeks post-delivery and I'm exhausted. Breastfeeding is draining me. Iron tablets cause horrible constipation. Need a lactation + recovery supplement that doesn't wreck my stomach.",
			"r/Mommit"},
		{"Kids Bedtime Sleep — Safe Supplement Needed", 6, 18, "https://reddit.com/r/IndianParenting/comments/sim_sleep_kids",
			"My 5-year-old takes 2 hours to fall asleep every night. We've tried warm milk, no screens, stories — nothing works. Need a safe, gentle supplement for kids sleep without melatonin.",
			"r/IndianParenting"},
	},
}

// SampleSignals returns the curated fallback signals for a brand with
// fresh ids. Unknown brands get none.
func SampleSignals(brand model.Brand) []model.RawSignal {
	src := samples[brand]
	out := make([]model.RawSignal, 0, len(src))
	for _, s := range src {
		out = append(out, model.RawSignal{
			ID:             newSignalID(),
			Issue:          s.issue,
			PainIntensity:  s.intensity,
			FrequencyCount: s.frequency,
			SourceURL:      s.url,
			RawText:        s.text,
			SourceMeta:     s.meta,
		})
	}
	return out
}

func newSignalID() string {
	return "lp_" + uuid.NewString()
}
