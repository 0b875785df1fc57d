package draft

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"mockshot/internal/domain/models"
	"mockshot/pkg/util"
)

// usernames and messages are the shuffle pools for the chat mock.
var usernames = []string{
	"Dr. Sugandese", "Luke587", "Fistful of Dollars", "Convertible",
	"TraderPro", "MoneyMoves", "BullMarket", "GainzKing",
}

var timePeriods = []string{"Today", "Past week", "Past month", "Past 3 months", "Year to date", "All time"}

// {mention} slots get a random @username substituted in.
var messages = []string{
	"first day in here\U0001F602\U0001F602 i regret not going heavier but ah well nice one bro @{mention}",
	"Reminder that shavings make a pile especially on shitty PA days. Shoutout @{mention} perfect entry and exit",
	"My share account hit 5 figures of profits in a day for the first time (: started this account with 20k halfway through June",
	"Not bad for 1 minute @{mention}",
	"Cheers @{mention} thanks again @{mention}",
	"\U0001F525\U0001F525\U0001F525 killed it today thanks to @{mention}",
}

// randomChat shuffles the identity fields of a chat draft in place. Layout
// toggles and reactions are left as the user set them.
func (c *Controller) randomChat(d *models.ChatDraft) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d.Username = usernames[c.rng.Intn(len(usernames))]

	msg := messages[c.rng.Intn(len(messages))]
	for strings.Contains(msg, "{mention}") {
		msg = strings.Replace(msg, "{mention}", usernames[c.rng.Intn(len(usernames))], 1)
	}
	d.Message = msg

	hour := c.rng.Intn(12) + 1
	minute := c.rng.Intn(60)
	pm := c.rng.Intn(2) == 1
	d.Timestamp = util.FormatClock12(hour, minute, pm)

	d.Verified = c.rng.Intn(2) == 1
	d.AvatarColor = "" // fall back to the palette for the new name
}

// randomTrading shuffles the headline figures of a trading draft in place.
// The stamp is clamped to regular market hours so the numbers stay
// believable.
func (c *Controller) randomTrading(d *models.TradingDraft) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d.Values == nil {
		d.Values = make(map[string]string)
	}
	d.Values["profit"] = util.FormatMoney(c.rng.Float64()*50000 + 1000)
	d.Values["percentage"] = util.FormatPercent(c.rng.Float64()*300 + 10)
	d.Values["totalValue"] = strconv.FormatFloat(c.rng.Float64()*100000+10000, 'f', 2, 64)
	d.Values["totalGain"] = strconv.FormatFloat(c.rng.Float64()*50000+5000, 'f', 2, 64)
	d.Values["todayGain"] = strconv.FormatFloat(c.rng.Float64()*10000+500, 'f', 2, 64)
	d.Values["timePeriod"] = timePeriods[c.rng.Intn(len(timePeriods))]

	hour, minute := util.ClampMarketHours(c.rng.Intn(24), c.rng.Intn(60))
	d.Values["date"] = util.FormatMarketStamp(time.Now(), hour, minute)
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
