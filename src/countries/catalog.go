package countries

// CountryOption is one entry of the country dropdown served to the form.
type CountryOption struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// CountryOptions is the full catalog shown in the tax form dropdown, in the
// Spanish names and ordering of the official country code annex.
var CountryOptions = []CountryOption{
	{"AFGANISTÁN - AF", "AF"},
	{"ALBANIA - AL", "AL"},
	{"ALEMANIA - DE", "DE"},
	{"ANDORRA - AD", "AD"},
	{"ANGOLA - AO", "AO"},
	{"ANGUILA - AI", "AI"},
	{"ANTÁRTIDA - AQ", "AQ"},
	{"ANTIGUA Y BARBUDA - AG", "AG"},
	{"ARABIA SAUDÍ - SA", "SA"},
	{"ARGELIA - DZ", "DZ"},
	{"ARGENTINA - AR", "AR"},
	{"ARMENIA - AM", "AM"},
	{"ARUBA - AW", "AW"},
	{"AUSTRALIA - AU", "AU"},
	{"AUSTRIA - AT", "AT"},
	{"AZERBAIYÁN - AZ", "AZ"},
	{"BAHAMAS - BS", "BS"},
	{"BAHRÉIN - BH", "BH"},
	{"BANGLADESH - BD", "BD"},
	{"BARBADOS - BB", "BB"},
	{"BÉLGICA - BE", "BE"},
	{"BELICE - BZ", "BZ"},
	{"BENÍN - BJ", "BJ"},
	{"BERMUDAS - BM", "BM"},
	{"BIELORRUSIA - BY", "BY"},
	{"BOLIVIA - BO", "BO"},
	{"BOSNIA-HERZEGOVINA - BA", "BA"},
	{"BOTSUANA - BW", "BW"},
	{"BRASIL - BR", "BR"},
	{"BRUNÉI - BN", "BN"},
	{"BULGARIA - BG", "BG"},
	{"BURKINA FASO - BF", "BF"},
	{"BURUNDI - BI", "BI"},
	{"BUTÁN - BT", "BT"},
	{"CABO VERDE - CV", "CV"},
	{"CAIMÁN, ISLAS - KY", "KY"},
	{"CAMBOYA - KH", "KH"},
	{"CAMERÚN - CM", "CM"},
	{"CANADÁ - CA", "CA"},
	{"CHAD - TD", "TD"},
	{"CHECA, REPÚBLICA - CZ", "CZ"},
	{"CHILE - CL", "CL"},
	{"CHINA - CN", "CN"},
	{"CHIPRE - CY", "CY"},
	{"COLOMBIA - CO", "CO"},
	{"COMORAS - KM", "KM"},
	{"CONGO - CG", "CG"},
	{"CONGO, REP. DEMOCRÁTICA - CD", "CD"},
	{"COREA DEL NORTE - KP", "KP"},
	{"COREA DEL SUR - KR", "KR"},
	{"COSTA DE MARFIL - CI", "CI"},
	{"COSTA RICA - CR", "CR"},
	{"CROACIA - HR", "HR"},
	{"CUBA - CU", "CU"},
	{"DINAMARCA - DK", "DK"},
	{"DOMINICA - DM", "DM"},
	{"DOMINICANA, REPÚBLICA - DO", "DO"},
	{"ECUADOR - EC", "EC"},
	{"EGIPTO - EG", "EG"},
	{"EMIRATOS ÁRABES UNIDOS - AE", "AE"},
	{"ERITREA - ER", "ER"},
	{"ESLOVAQUIA - SK", "SK"},
	{"ESLOVENIA - SI", "SI"},
	{"ESPAÑA - ES", "ES"},
	{"ESTADOS UNIDOS - US", "US"},
	{"ESTONIA - EE", "EE"},
	{"ETIOPÍA - ET", "ET"},
	{"FEROE, ISLAS - FO", "FO"},
	{"FILIPINAS - PH", "PH"},
	{"FINLANDIA - FI", "FI"},
	{"FIYI - FJ", "FJ"},
	{"FRANCIA - FR", "FR"},
	{"GABÓN - GA", "GA"},
	{"GAMBIA - GM", "GM"},
	{"GEORGIA - GE", "GE"},
	{"GHANA - GH", "GH"},
	{"GIBRALTAR - GI", "GI"},
	{"GRANADA - GD", "GD"},
	{"GRECIA - GR", "GR"},
	{"GROENLANDIA - GL", "GL"},
	{"GUATEMALA - GT", "GT"},
	{"GUINEA - GN", "GN"},
	{"GUINEA ECUATORIAL - GQ", "GQ"},
	{"GUINEA-BISSAU - GW", "GW"},
	{"GUYANA - GY", "GY"},
	{"HAITÍ - HT", "HT"},
	{"HONDURAS - HN", "HN"},
	{"HONG-KONG - HK", "HK"},
	{"HUNGRÍA - HU", "HU"},
	{"INDIA - IN", "IN"},
	{"INDONESIA - ID", "ID"},
	{"IRÁN - IR", "IR"},
	{"IRAQ - IQ", "IQ"},
	{"IRLANDA - IE", "IE"},
	{"ISLANDIA - IS", "IS"},
	{"ISRAEL - IL", "IL"},
	{"ITALIA - IT", "IT"},
	{"JAMAICA - JM", "JM"},
	{"JAPÓN - JP", "JP"},
	{"JORDANIA - JO", "JO"},
	{"KAZAJSTÁN - KZ", "KZ"},
	{"KENIA - KE", "KE"},
	{"KIRGUISTÁN - KG", "KG"},
	{"KIRIBATI - KI", "KI"},
	{"KUWAIT - KW", "KW"},
	{"LAOS - LA", "LA"},
	{"LESOTHO - LS", "LS"},
	{"LETONIA - LV", "LV"},
	{"LÍBANO - LB", "LB"},
	{"LIBERIA - LR", "LR"},
	{"LIBIA - LY", "LY"},
	{"LIECHTENSTEIN - LI", "LI"},
	{"LITUANIA - LT", "LT"},
	{"LUXEMBURGO - LU", "LU"},
	{"MACAO - MO", "MO"},
	{"MACEDONIA - MK", "MK"},
	{"MADAGASCAR - MG", "MG"},
	{"MALASIA - MY", "MY"},
	{"MALAWI - MW", "MW"},
	{"MALDIVAS - MV", "MV"},
	{"MALI - ML", "ML"},
	{"MALTA - MT", "MT"},
	{"MARRUECOS - MA", "MA"},
	{"MAURICIO - MU", "MU"},
	{"MAURITANIA - MR", "MR"},
	{"MÉXICO - MX", "MX"},
	{"MOLDAVIA - MD", "MD"},
	{"MÓNACO - MC", "MC"},
	{"MONGOLIA - MN", "MN"},
	{"MONTENEGRO - ME", "ME"},
	{"MOZAMBIQUE - MZ", "MZ"},
	{"MYANMAR - MM", "MM"},
	{"NAMIBIA - NA", "NA"},
	{"NAURU - NR", "NR"},
	{"NEPAL - NP", "NP"},
	{"NICARAGUA - NI", "NI"},
	{"NÍGER - NE", "NE"},
	{"NIGERIA - NG", "NG"},
	{"NORUEGA - NO", "NO"},
	{"NUEVA ZELANDA - NZ", "NZ"},
	{"OMÁN - OM", "OM"},
	{"PAÍSES BAJOS - NL", "NL"},
	{"PAKISTÁN - PK", "PK"},
	{"PANAMÁ - PA", "PA"},
	{"PAPÚA NUEVA GUINEA - PG", "PG"},
	{"PARAGUAY - PY", "PY"},
	{"PERÚ - PE", "PE"},
	{"POLONIA - PL", "PL"},
	{"PORTUGAL - PT", "PT"},
	{"PUERTO RICO - PR", "PR"},
	{"QATAR - QA", "QA"},
	{"REINO UNIDO - GB", "GB"},
	{"RUANDA - RW", "RW"},
	{"RUMANÍA - RO", "RO"},
	{"RUSIA - RU", "RU"},
	{"SALOMÓN, ISLAS - SB", "SB"},
	{"SALVADOR, EL - SV", "SV"},
	{"SAMOA - WS", "WS"},
	{"SAN MARINO - SM", "SM"},
	{"SANTA LUCÍA - LC", "LC"},
	{"SANTO TOMÉ Y PRÍNCIPE - ST", "ST"},
	{"SENEGAL - SN", "SN"},
	{"SERBIA - RS", "RS"},
	{"SEYCHELLES - SC", "SC"},
	{"SIERRA LEONA - SL", "SL"},
	{"SINGAPUR - SG", "SG"},
	{"SIRIA - SY", "SY"},
	{"SOMALIA - SO", "SO"},
	{"SRI LANKA - LK", "LK"},
	{"SUDÁFRICA - ZA", "ZA"},
	{"SUDÁN - SD", "SD"},
	{"SUDÁN DEL SUR - SS", "SS"},
	{"SUECIA - SE", "SE"},
	{"SUIZA - CH", "CH"},
	{"SURINAM - SR", "SR"},
	{"TAILANDIA - TH", "TH"},
	{"TAIWÁN - TW", "TW"},
	{"TANZANIA - TZ", "TZ"},
	{"TAYIKISTÁN - TJ", "TJ"},
	{"TIMOR LESTE - TL", "TL"},
	{"TOGO - TG", "TG"},
	{"TONGA - TO", "TO"},
	{"TRINIDAD Y TOBAGO - TT", "TT"},
	{"TÚNEZ - TN", "TN"},
	{"TURKMENISTÁN - TM", "TM"},
	{"TURQUÍA - TR", "TR"},
	{"TUVALU - TV", "TV"},
	{"UCRANIA - UA", "UA"},
	{"UGANDA - UG", "UG"},
	{"URUGUAY - UY", "UY"},
	{"UZBEKISTÁN - UZ", "UZ"},
	{"VANUATU - VU", "VU"},
	{"VATICANO - VA", "VA"},
	{"VENEZUELA - VE", "VE"},
	{"VIETNAM - VN", "VN"},
	{"YEMEN - YE", "YE"},
	{"YIBUTI - DJ", "DJ"},
	{"ZAMBIA - ZM", "ZM"},
	{"ZIMBABWE - ZW", "ZW"},
}
