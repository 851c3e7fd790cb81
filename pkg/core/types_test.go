package core

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderSide_String(t *testing.T) {
	assert.Equal(t, "BUY", SideBuy.String())
	assert.Equal(t, "SELL", SideSell.String())
}

func TestOrderSide_JSON(t *testing.T) {
	data, err := sonic.Marshal(SideSell)
	require.NoError(t, err)
	assert.Equal(t, `"SELL"`, string(data))

	var side OrderSide
	require.NoError(t, sonic.Unmarshal([]byte(`"sell"`), &side))
	assert.Equal(t, SideSell, side)
}

func TestOrderType_String(t *testing.T) {
	tests := []struct {
		orderType OrderType
		want      string
	}{
		{TypeLimit, "LIMIT"},
		{TypeMarket, "MARKET"},
		{TypeStopLoss, "STOP_LOSS"},
		{TypeStopLossLimit, "STOP_LOSS_LIMIT"},
		{TypeTakeProfit, "TAKE_PROFIT"},
		{TypeTakeProfitLimit, "TAKE_PROFIT_LIMIT"},
		{TypeLimitMaker, "LIMIT_MAKER"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.orderType.String())

			var decoded OrderType
			require.NoError(t, sonic.Unmarshal([]byte(`"`+tt.want+`"`), &decoded))
			assert.Equal(t, tt.orderType, decoded)
		})
	}
}

func TestTimeInForce_String(t *testing.T) {
	assert.Equal(t, "GTC", GTC.String())
	assert.Equal(t, "IOC", IOC.String())
	assert.Equal(t, "FOK", FOK.String())

	var tif TimeInForce
	require.NoError(t, sonic.Unmarshal([]byte(`"fok"`), &tif))
	assert.Equal(t, FOK, tif)
}

func TestOrderRespType_String(t *testing.T) {
	assert.Equal(t, "ACK", RespAck.String())
	assert.Equal(t, "RESULT", RespResult.String())
	assert.Equal(t, "FULL", RespFull.String())
}

func TestInterval_String(t *testing.T) {
	assert.Equal(t, "1m", Interval1m.String())
	assert.Equal(t, "1M", Interval1M.String())
}
