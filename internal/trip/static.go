package trip

// Static reference content for the trip. None of this is fetched or
// mutated; the sheet only owns the day-by-day schedule and the spot/food
// lists.

// DefaultDayTitles fills in a day's title when none of its rows carry one.
var DefaultDayTitles = map[int]string{
	1: "抵達與入住",
	2: "東釜山歡樂行",
	3: "海港風情與文化",
	4: "文化村與購物",
	5: "海雲台全攻略",
	6: "歸途",
}

// Flights lists the booked flight legs.
var Flights = []Flight{
	{
		Kind:             "departure",
		Airline:          "釜山航空",
		FlightNumber:     "BX792",
		Aircraft:         "空中巴士 A321",
		DepartureTime:    "2/26 17:40",
		ArrivalTime:      "2/26 21:00",
		DepartureAirport: "TPE 桃園國際機場 T2",
		ArrivalAirport:   "PUS 釜山金海機場",
		Duration:         "2h 20m",
		Cabin:            "經濟艙 R",
	},
	{
		Kind:             "return",
		Airline:          "釜山航空",
		FlightNumber:     "BX793",
		Aircraft:         "空中巴士 A321",
		DepartureTime:    "3/3 10:50",
		ArrivalTime:      "3/3 12:25",
		DepartureAirport: "PUS 釜山金海機場",
		ArrivalAirport:   "TPE 桃園國際機場 T2",
		Duration:         "2h 35m",
		Cabin:            "經濟艙 D",
	},
}

// Members lists the travelers.
var Members = []Member{
	{Name: "庭瑜", Role: "大人", Avatar: "👩‍🦰"},
	{Name: "Yang", Role: "大人", Avatar: "👨‍🦱"},
	{Name: "淯丞", Role: "孩童", Avatar: "👦"},
	{Name: "智棋", Role: "嬰兒", Avatar: "👶"},
	{Name: "宏翔", Role: "大人", Avatar: "👨"},
	{Name: "小藍", Role: "大人", Avatar: "👩"},
}

// InfoCards holds the travel tips shown on the info tab.
var InfoCards = []InfoCard{
	{
		Title: "交通",
		Items: []string{
			"下載 Naver Map 導航 (必備)",
			"購買 T-Money 卡可搭乘地鐵/公車",
			"釜山地鐵出口多樓梯，推車找 Elevator",
			"KakaoTaxi 或 Uber 可綁台灣信用卡",
		},
	},
	{
		Title: "換錢與付款",
		Items: []string{
			"Wowpass 在地鐵站可直接換錢/領卡",
			"大多數餐廳接受海外信用卡",
			"路邊攝影建議準備少量韓幣現金",
			"匯率通常是機場 < 市區換錢所",
		},
	},
	{
		Title: "必備 APP",
		Items: []string{
			"Naver Map (導航)",
			"Papago (精準翻譯)",
			"Baedal Minjok (外送 app - 需認證)",
			"Shuttle Delivery (英文外送 app)",
		},
	},
	{
		Title: "行程注意事項",
		Items: []string{
			"2月底氣溫約 0-10 度，洋蔥式穿法",
			"SPA LAND 13歲以下需家長陪同",
			"海岸列車建議提早預約 (容易售罄)",
			"餐廳多有兒童椅，帶嬰兒建議避開尖峰",
		},
	},
}
