package render

// NamedValue is a display-name/value pair surfaced to form clients.
type NamedValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// AvatarColors lists the selectable avatar colors.
func AvatarColors() []NamedValue {
	return []NamedValue{
		{Name: "Blurple", Value: "#5865F2"},
		{Name: "Green", Value: "#57F287"},
		{Name: "Yellow", Value: "#FEE75C"},
		{Name: "Pink", Value: "#EB459E"},
		{Name: "Red", Value: "#ED4245"},
	}
}

// BackgroundThemes lists the selectable chat backgrounds.
func BackgroundThemes() []NamedValue {
	return []NamedValue{
		{Name: "Default Dark", Value: "dark"},
		{Name: "Midnight", Value: "#1E1F22"},
		{Name: "Darker", Value: "#0A0A0A"},
	}
}

// EmojiPresets lists the reaction emoji choices.
func EmojiPresets() []string {
	return []string{"💰", "🔥", "😊", "👍", "🚀", "💪", "🎯", "⭐"}
}

// MessagePresets lists the canned signal message bodies. Placeholders like
// {symbol} and {profit} are left for the user to fill in.
func MessagePresets() []NamedValue {
	return []NamedValue{
		{Name: "Entry Signal - Calls", Value: "Bought {symbol} ${strikePrice} Calls {expiration}\nEntry: ${entryPrice}\n{quantity} contracts\nLet's see how this plays out"},
		{Name: "Entry Signal - Stock", Value: "Just opened a position in {symbol}\nEntry: ${price}\nQuantity: {shares} shares\nTarget: ${target}"},
		{Name: "Exit Signal - Profit", Value: "Closed {symbol} position\nProfit: +${profit} ({percentage}%)\nEntry: ${entry} → Exit: ${exit}\nThanks for the play @{mention}"},
		{Name: "Exit Signal - Big Win", Value: "{symbol} ${strikePrice} Calls {expiration}\nClosed for +{percentage}% gain\nFrom ${cost} to ${sold}\nProfit: +${profit}\nAbsolute monster play!"},
		{Name: "Hold Update", Value: "{symbol} update:\nCurrently up +{percentage}% on this position\nStill holding, target not hit yet\nEntry: ${entry} | Current: ${current}"},
		{Name: "Day P&L", Value: "Day's P&L: +${profit}\n{wins} wins, {losses} losses\nAnother solid trading day!"},
		{Name: "Weekly Recap", Value: "Week in review:\nTotal P&L: +${profit} ({percentage}%)\nBest trade: {symbol} +${bestProfit}\nAccount size: ${accountValue}\nOn to the next week!"},
	}
}
