package assisting

import "fmt"

const systemPrompt = `You are an AI Analytics Assistant for a KPI Dashboard. You help users analyze their marketing campaign data and provide insights.

Context: The user has access to a KPI Dashboard showing real campaign data:
- Campaign performance across platforms (Instagram, YouTube, LinkedIn, Twitter)
- Metrics like ROAS, ROI, CPC, CTR, impressions, clicks, conversions
- Budget and spending data in Indian Rupees (₹)
- Campaign names like "New Launch", "Gaming Night", "Summer Vibes", "Energy Box", "Extreme Sports"
- Data from January 2024 to December 2024
- 20 total campaigns with real performance metrics

Your role:
1. Analyze campaign performance data
2. Provide actionable insights and recommendations
3. Explain marketing metrics in simple terms
4. Suggest optimization strategies
5. Help with budget allocation decisions

Keep responses concise, actionable, and focused on marketing insights. Use bullet points and clear formatting when helpful.`

const defaultReplyTemplate = `**I can help you analyze your campaign data!** 📊

**Your Dashboard Overview:**
• 20 campaigns across Instagram, YouTube, LinkedIn, Twitter
• Campaign types: New Launch, Gaming Night, Summer Vibes, Energy Box, Extreme Sports
• Spending tracked in Indian Rupees (₹)
• Data from January 2024 to December 2024

**Ask me about:**
• "Which platform has the best ROAS?"
• "What are my top performing campaigns?"
• "How should I optimize my budget?"
• "Which campaigns need improvement?"

**Quick Navigation:**
📊 Dashboard tab - Overall metrics
📈 KPI Visualization - Platform comparisons
📋 Data Details - Detailed campaign data

*You asked: "%s"*
Try rephrasing your question or ask about specific metrics!`

// defaultReply é a resposta genérica, que repete a pergunta do usuário
func defaultReply(message string) string {
	return fmt.Sprintf(defaultReplyTemplate, message)
}
