package assisting

import "strings"

// Rule associa um critério sobre a mensagem (já em minúsculas) a uma resposta fixa
type Rule struct {
	Name  string
	Match func(message string) bool
	Reply string
}

func containsAny(message string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(message, term) {
			return true
		}
	}
	return false
}

// DefaultRules devolve as regras na ordem de avaliação. A primeira que casar responde.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "roas",
			Match: func(message string) bool {
				return containsAny(message, "roas", "return on ad spend")
			},
			Reply: roasReply,
		},
		{
			Name: "platform_performance",
			Match: func(message string) bool {
				return strings.Contains(message, "platform") && containsAny(message, "best", "performance")
			},
			Reply: platformReply,
		},
		{
			Name: "top_campaigns",
			Match: func(message string) bool {
				return strings.Contains(message, "campaign") && containsAny(message, "best", "top")
			},
			Reply: campaignReply,
		},
		{
			Name: "budget_optimization",
			Match: func(message string) bool {
				return containsAny(message, "budget", "spend", "optimize")
			},
			Reply: budgetReply,
		},
	}
}

const roasReply = `**ROAS Analysis from Your Dashboard:**

Based on your campaign data:
• **Twitter Energy Box**: 3.9x ROAS (Best performer)
• **Instagram Summer Vi**: 4.26x ROAS (Excellent)
• **YouTube Summer Vi**: 2.99x ROAS (Good)
• **LinkedIn Gaming Ni**: 3.16x ROAS (Good)

**Recommendations:**
✅ Increase budget for Twitter Energy Box campaign
✅ Scale Instagram Summer Vi campaign
⚠️ Optimize YouTube campaigns for better ROAS
📊 Consider reallocating budget from lower ROAS campaigns`

const platformReply = `**Platform Performance Analysis:**

**Top Performing Platforms:**
🥇 **Instagram**: Highest engagement, strong ROAS
🥈 **Twitter**: Best ROAS on Energy Box campaign
🥉 **YouTube**: Good reach, needs optimization

**Key Metrics:**
• Instagram: ₹2,166-₹4,547 KPI range
• Twitter: ₹674-₹3,385 KPI range
• YouTube: ₹1,226-₹3,491 KPI range
• LinkedIn: ₹733-₹2,281 KPI range

**Recommendation:** Focus budget on Instagram and Twitter campaigns for maximum ROI.`

const campaignReply = `**Top Performing Campaigns:**

🏆 **Instagram Extreme Si**: ₹4,547 KPI, 2544 impressions
🥈 **YouTube New Laun**: ₹3,491 KPI, 1063 impressions
🥉 **Twitter Extreme Si**: ₹3,385 KPI, 1584 impressions

**Campaign Insights:**
• "Extreme Sports" theme performs well across platforms
• "New Launch" campaigns show strong engagement
• "Energy Box" has highest ROAS potential

**Next Steps:** Replicate successful "Extreme Sports" creative across other platforms.`

const budgetReply = `**Budget Optimization Recommendations:**

**Current Spending Analysis:**
• Total campaigns: 20 across 4 platforms
• Spend range: ₹1,225 - ₹4,652 per campaign
• Best efficiency: Twitter Energy Box (₹4,215 spend, 3.9x ROAS)

**Optimization Strategy:**
📈 **Increase Budget:**
   • Twitter Energy Box (+50%)
   • Instagram Summer Vi (+30%)

📉 **Reduce Budget:**
   • Lower performing YouTube campaigns
   • LinkedIn campaigns with high CPC

💡 **Test Budget:**
   • Try "Extreme Sports" theme on LinkedIn
   • Scale successful Instagram creatives to Facebook`
