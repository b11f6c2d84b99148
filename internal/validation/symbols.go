package validation

// companyNames maps each tracked ticker to its canonical display name.
var companyNames = map[string]string{
	"AAPL":  "Apple Inc.",
	"ABBV":  "AbbVie",
	"ABNB":  "Airbnb",
	"ABT":   "Abbott Laboratories",
	"ACN":   "Accenture",
	"ADBE":  "Adobe",
	"ADI":   "Analog Devices",
	"ADP":   "Automatic Data Processing",
	"ADSK":  "Autodesk",
	"AEP":   "American Electric Power",
	"AFL":   "Aflac",
	"AIG":   "American International Group",
	"AJG":   "Arthur J. Gallagher",
	"ALGN":  "Align Technology",
	"ALL":   "Allstate",
	"ALLE":  "Allegion",
	"ALLY":  "Ally Financial",
	"AMAT":  "Applied Materials",
	"AMC":   "AMC Entertainment",
	"AMD":   "Advanced Micro Devices",
	"AMGN":  "Amgen",
	"AMT":   "American Tower",
	"AMZN":  "Amazon",
	"ANET":  "Arista Networks",
	"ANF":   "Abercrombie & Fitch",
	"AON":   "Aon",
	"AOS":   "A. O. Smith",
	"APA":   "APA Corporation",
	"APD":   "Air Products and Chemicals",
	"APH":   "Amphenol",
	"APO":   "Apollo Global Management",
	"APP":   "AppLovin",
	"ARM":   "Arm Holdings",
	"ASML":  "ASML",
	"AVB":   "AvalonBay Communities",
	"AVGO":  "Broadcom",
	"AXON":  "Axon Enterprise",
	"AXP":   "American Express",
	"AZO":   "AutoZone",
	"BA":    "Boeing",
	"BABA":  "Alibaba Group",
	"BAC":   "Bank of America",
	"BBY":   "Best Buy",
	"BDX":   "Becton, Dickinson",
	"BIIB":  "Biogen",
	"BK":    "Bank of New York Mellon",
	"BKNG":  "Booking Holdings",
	"BKR":   "Baker Hughes",
	"BLK":   "BlackRock",
	"BMY":   "Bristol-Myers Squibb",
	"BNTX":  "BioNTech",
	"BP":    "BP",
	"BSX":   "Boston Scientific",
	"BX":    "Blackstone",
	"BYND":  "Beyond Meat",
	"C":     "Citigroup",
	"CARR":  "Carrier Global",
	"CAT":   "Caterpillar",
	"CB":    "Chubb",
	"CCI":   "Crown Castle",
	"CCL":   "Carnival",
	"CDNS":  "Cadence Design Systems",
	"CEG":   "Constellation Energy",
	"CFG":   "Citizens Financial",
	"CHTR":  "Charter Communications",
	"CI":    "Cigna Group",
	"CL":    "Colgate-Palmolive",
	"CMA":   "Comerica",
	"CMCSA": "Comcast",
	"CME":   "CME Group",
	"CMG":   "Chipotle Mexican Grill",
	"CMI":   "Cummins",
	"COF":   "Capital One Financial",
	"COIN":  "Coinbase Global",
	"COP":   "ConocoPhillips",
	"COST":  "Costco",
	"CRM":   "Salesforce",
	"CRWD":  "CrowdStrike",
	"CSCO":  "Cisco Systems",
	"CSX":   "CSX Corporation",
	"CTAS":  "Cintas",
	"CTSH":  "Cognizant",
	"CVS":   "CVS Health",
	"CVX":   "Chevron",
	"D":     "Dominion Energy",
	"DAL":   "Delta Air Lines",
	"DASH":  "DoorDash",
	"DD":    "DuPont de Nemours",
	"DDOG":  "Datadog",
	"DE":    "Deere & Company",
	"DELL":  "Dell Technologies",
	"DG":    "Dollar General",
	"DHR":   "Danaher",
	"DIS":   "Walt Disney",
	"DKNG":  "DraftKings",
	"DLR":   "Digital Realty Trust",
	"DLTR":  "Dollar Tree",
	"DOCU":  "DocuSign",
	"DOV":   "Dover Corporation",
	"DPZ":   "Domino's Pizza",
	"DUK":   "Duke Energy",
	"DVN":   "Devon Energy",
	"DXCM":  "DexCom",
	"ECL":   "Ecolab",
	"EIX":   "Edison International",
	"EL":    "Estée Lauder",
	"ELV":   "Elevance Health",
	"EMR":   "Emerson Electric",
	"ENPH":  "Enphase Energy",
	"EOG":   "EOG Resources",
	"EQIX":  "Equinix",
	"EQR":   "Equity Residential",
	"ESS":   "Essex Property Trust",
	"ETN":   "Eaton",
	"ETR":   "Entergy",
	"EW":    "Edwards Lifesciences",
	"EXC":   "Exelon Corporation",
	"EXPE":  "Expedia Group",
	"F":     "Ford Motor",
	"FAST":  "Fastenal",
	"FCX":   "Freeport-McMoRan",
	"FDX":   "FedEx",
	"FHN":   "First Horizon",
	"FI":    "Fiserv",
	"FICO":  "Fair Isaac",
	"FIG":   "Figma",
	"FITB":  "Fifth Third Bancorp",
	"FSLR":  "First Solar",
	"FTNT":  "Fortinet",
	"FTV":   "Fortive",
	"GD":    "General Dynamics",
	"GE":    "General Electric",
	"GEV":   "GE Vernova",
	"GILD":  "Gilead Sciences",
	"GIS":   "General Mills",
	"GLW":   "Corning",
	"GM":    "General Motors",
	"GMAB":  "Genmab",
	"GME":   "GameStop",
	"GOOGL": "Alphabet",
	"GPS":   "Gap",
	"GS":    "Goldman Sachs",
	"HAL":   "Halliburton",
	"HBAN":  "Huntington Bancshares",
	"HCA":   "HCA Healthcare",
	"HD":    "Home Depot",
	"HII":   "Huntington Ingalls Industries",
	"HLT":   "Hilton Worldwide Holdings",
	"HOLX":  "Hologic",
	"HON":   "Honeywell",
	"HOOD":  "Robinhood Markets",
	"HSY":   "Hershey Company",
	"HUM":   "Humana",
	"HWM":   "Howmet Aerospace",
	"IBM":   "IBM",
	"ICE":   "Intercontinental Exchange",
	"IDXX":  "Idexx Laboratories",
	"ILMN":  "Illumina",
	"INTC":  "Intel",
	"INTU":  "Intuit",
	"INVH":  "Invitation Homes",
	"IP":    "International Paper",
	"IR":    "Ingersoll Rand",
	"IRM":   "Iron Mountain",
	"ISRG":  "Intuitive Surgical",
	"ITW":   "Illinois Tool Works",
	"JNJ":   "Johnson & Johnson",
	"JPM":   "JPMorgan Chase",
	"KEY":   "KeyCorp",
	"KHC":   "Kraft Heinz",
	"KKR":   "KKR",
	"KLAC":  "KLA",
	"KMB":   "Kimberly-Clark",
	"KMI":   "Kinder Morgan",
	"KO":    "Coca-Cola",
	"KR":    "Kroger",
	"LEVI":  "Levi Strauss",
	"LHX":   "L3Harris Technologies",
	"LI":    "Li Auto",
	"LIN":   "Linde",
	"LLY":   "Eli Lilly",
	"LMT":   "Lockheed Martin",
	"LNG":   "Cheniere Energy",
	"LOW":   "Lowe's",
	"LRCX":  "Lam Research",
	"LULU":  "Lululemon",
	"LUV":   "Southwest Airlines",
	"LYFT":  "Lyft",
	"MA":    "Mastercard",
	"MAR":   "Marriott International",
	"MCD":   "McDonald's",
	"MCK":   "McKesson",
	"MCO":   "Moody's",
	"MDB":   "MongoDB",
	"MDLZ":  "Mondelez International",
	"MDT":   "Medtronic",
	"MELI":  "MercadoLibre",
	"MET":   "MetLife",
	"META":  "Meta",
	"MMC":   "Marsh & McLennan",
	"MMM":   "3M",
	"MNST":  "Monster Beverage",
	"MO":    "Altria Group",
	"MPC":   "Marathon Petroleum",
	"MPWR":  "Monolithic Power Systems",
	"MRK":   "Merck & Co.",
	"MRNA":  "Moderna",
	"MRVL":  "Marvell Technology",
	"MS":    "Morgan Stanley",
	"MSFT":  "Microsoft",
	"MSI":   "Motorola Solutions",
	"MTB":   "M&T Bank",
	"MU":    "Micron Technology",
	"NEE":   "NextEra Energy",
	"NEM":   "Newmont",
	"NFLX":  "Netflix",
	"NKE":   "Nike",
	"NOC":   "Northrop Grumman",
	"NOW":   "ServiceNow",
	"NSC":   "Norfolk Southern",
	"NVDA":  "NVIDIA",
	"NXPI":  "NXP Semiconductors",
	"O":     "Realty Income",
	"OKTA":  "Okta",
	"ORCL":  "Oracle",
	"OTIS":  "Otis Worldwide",
	"OXY":   "Occidental Petroleum",
	"PANW":  "Palo Alto Networks",
	"PEP":   "PepsiCo",
	"PFE":   "Pfizer",
	"PG":    "Procter & Gamble",
	"PGR":   "Progressive",
	"PH":    "Parker-Hannifin",
	"PLD":   "Prologis",
	"PLTR":  "Palantir Technologies",
	"PLUG":  "Plug Power",
	"PM":    "Philip Morris International",
	"PNC":   "PNC Financial Services Group",
	"PRU":   "Prudential Financial",
	"PSA":   "Public Storage",
	"PSX":   "Phillips 66",
	"PTON":  "Peloton Interactive",
	"PWR":   "Quanta Services",
	"PYPL":  "PayPal",
	"QCOM":  "Qualcomm",
	"RBLX":  "Roblox",
	"RCL":   "Royal Caribbean Group",
	"REGN":  "Regeneron Pharmaceuticals",
	"RF":    "Regions Financial",
	"RIVN":  "Rivian",
	"RL":    "Ralph Lauren",
	"ROK":   "Rockwell Automation",
	"ROKU":  "Roku",
	"ROST":  "Ross Stores",
	"RSG":   "Republic Services",
	"RTX":   "Raytheon Technologies",
	"SBUX":  "Starbucks",
	"SCHW":  "Charles Schwab",
	"SE":    "Sea Limited",
	"SHEL":  "Shell",
	"SHOP":  "Shopify",
	"SHW":   "Sherwin-Williams",
	"SLB":   "Schlumberger",
	"SMCI":  "Super Micro Computer",
	"SNAP":  "Snap",
	"SNOW":  "Snowflake",
	"SNPS":  "Synopsys",
	"SO":    "Southern Company",
	"SOFI":  "SoFi Technologies",
	"SPG":   "Simon Property Group",
	"SPGI":  "S&P Global",
	"SPOT":  "Spotify",
	"SRE":   "Sempra Energy",
	"STT":   "State Street Corporation",
	"STX":   "Seagate Technology",
	"SWK":   "Stanley Black & Decker",
	"SYK":   "Stryker",
	"T":     "AT&T",
	"TDG":   "TransDigm Group",
	"TDY":   "Teledyne Technologies",
	"TEAM":  "Atlassian",
	"TEL":   "TE Connectivity",
	"TFC":   "Truist Financial",
	"TGT":   "Target",
	"TJX":   "TJX Companies",
	"TMO":   "Thermo Fisher Scientific",
	"TMUS":  "T-Mobile US",
	"TRV":   "Travelers",
	"TSLA":  "Tesla",
	"TT":    "Trane Technologies",
	"TTD":   "The Trade Desk",
	"TWLO":  "Twilio",
	"TXN":   "Texas Instruments",
	"UBER":  "Uber Technologies",
	"ULTA":  "Ulta Beauty",
	"UNH":   "UnitedHealth Group",
	"UNP":   "Union Pacific",
	"UPS":   "United Parcel Service",
	"URI":   "United Rentals",
	"USB":   "U.S. Bancorp",
	"V":     "Visa",
	"VICI":  "VICI Properties",
	"VLO":   "Valero Energy",
	"VRTX":  "Vertex Pharmaceuticals",
	"VST":   "Vistra",
	"VTR":   "Ventas",
	"VZ":    "Verizon",
	"WCC":   "Wesco International",
	"WDAY":  "Workday",
	"WELL":  "Welltower",
	"WFC":   "Wells Fargo",
	"WM":    "Waste Management",
	"WMB":   "Williams Companies",
	"WMT":   "Walmart",
	"XOM":   "Exxon Mobil",
	"XPEV":  "XPeng",
	"XYZ":   "Block",
	"YUM":   "Yum! Brands",
	"ZM":    "Zoom Video Communications",
	"ZTS":   "Zoetis",
}

// untitledSymbols are tracked tickers without a canonical display name.
var untitledSymbols = []string{"PPL"}
