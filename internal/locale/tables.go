package locale

// GHSCodes are the language-independent pictogram codes paired with the
// localized GHSSymbols/GHSDesc entries by index.
var GHSCodes = [9]string{"GHS01", "GHS02", "GHS03", "GHS04", "GHS05", "GHS06", "GHS07", "GHS08", "GHS09"}

var tables = map[string]Strings{
	"hu": {
		Code: "hu",
		Name: "magyar",

		MainTitle:      "VESZÉLYES ANYAGOK NYILVÁNTARTÁSA ÉS KÉMIAI KOCKÁZATÉRTÉKELÉS",
		PreparedBy:     "Készítette: AI asszisztens a feltöltött biztonsági adatlapok (SDS/MSDS) alapján",
		PrepDate:       "Készítés dátuma",
		ProcessedCount: "Feldolgozott biztonsági adatlapok száma",
		LegalBG:        "JOGSZABÁLYI HÁTTÉR:",
		LegalRefs: []string{
			"• 1993. évi XCIII. tv. (Mvt.) - 54.§, 63/A.§",
			"• 2000. évi XXV. tv. (Kbtv.)",
			"• 5/2020. (II. 6.) ITM rendelet",
			"• 25/2000. (IX. 30.) EüM-SzCsM rendelet",
			"• 1272/2008/EK (CLP)",
			"• 1907/2006/EK (REACH)",
			"• (EU) 2020/878",
		},
		SheetsContent: "MUNKALAPOK TARTALMA:",
		SheetNames:    [6]string{"Útmutató", "Segédtáblák", "Veszélyes_anyag_adatbázis", "Kémiai_kockázatértékelés", "Expozíciós_nyilvántartás", "Intézkedési_terv"},
		SheetDesc: [6]string{
			"Útmutató - Ez a munkalap",
			"Veszélyes_anyag_adatbázis - Teljes nyilvántartás az összes SDS adattal",
			"Kémiai_kockázatértékelés - Kockázatértékelés 4x4 mátrix alapján",
			"Expozíciós_nyilvántartás - Mvt. 63/A. § szerinti munkavállalói nyilvántartás",
			"Intézkedési_terv - Kockázatcsökkentő intézkedések nyomon követése",
			"Segédtáblák - Kockázati mátrix, GHS piktogramok, skálák",
		},
		Markings:   `JELÖLÉSEK: Az "X" karakter piros háttérrel jelöli azokat a mezőket, amelyek szükségesek lennének, de nem találhatók az adott SDS-ben.`,
		EmptyCells: "Az üres cellák azt jelentik, hogy az adat nem releváns az adott terméknél.",

		RiskMatrixTitle: "KOCKÁZATI MÁTRIX (Valószínűség × Súlyosság)",
		Severity:        [4]string{"Súlyosság 1\n(Elhanyagolható)", "Súlyosság 2\n(Csekély)", "Súlyosság 3\n(Közepes)", "Súlyosság 4\n(Súlyos)"},
		Probability:     [4]string{"Valószínűség 4 (Nagyon valószínű)", "Valószínűség 3 (Valószínű)", "Valószínűség 2 (Lehetséges)", "Valószínűség 1 (Nem valószínű)"},
		RiskLevelsTitle: "KOCKÁZATI SZINTEK:",
		RiskLevels: [4]string{
			"1-2: ELFOGADHATÓ (zöld)",
			"3-4: TOLERÁLHATÓ (sárga) - intézkedés szükséges",
			"5-9: JELENTŐS (narancs) - sürgős intézkedés",
			"10-16: ELFOGADHATATLAN (piros) - azonnali intézkedés / tevékenység leállítása",
		},
		GHSTitle:   "GHS PIKTOGRAMOK:",
		GHSSymbols: [9]string{"Robbanó bomba", "Láng", "Láng kör felett", "Gázpalack", "Maró hatás", "Koponya", "Felkiáltójel", "Egészségi veszély", "Környezet"},
		GHSDesc: [9]string{
			"Robbanóanyagok", "Tűzveszélyes anyagok", "Oxidáló anyagok", "Nyomás alatt lévő gázok",
			"Fémekre korrozív; bőrmarás; szemkárosodás", "Akut toxicitás (halálos/mérgező)",
			"Irritáció; szenzibilizáció; akut tox. 4; narkózis", "CMR; STOT; aspiráció; szenzibilizáció (légúti)",
			"Vízi környezetre veszélyes",
		},
		ProbScaleTitle: "VALÓSZÍNŰSÉGI SKÁLA:",
		ProbScale: [4]ScaleEntry{
			{"1 - Nem valószínű", "Ritka expozíció, hatékony védelem, zárt rendszer"},
			{"2 - Lehetséges", "Alkalmi expozíció, részleges védelem"},
			{"3 - Valószínű", "Rendszeres expozíció, hiányos védelem"},
			{"4 - Nagyon valószínű", "Folyamatos expozíció, védelem nélkül"},
		},
		SevScaleTitle: "SÚLYOSSÁGI SKÁLA:",
		SevScale: [4]ScaleEntry{
			{"1 - Elhanyagolható", "Enyhe, reverzibilis hatás (irritáció)"},
			{"2 - Csekély", "Reverzibilis egészségkárosodás"},
			{"3 - Közepes", "Súlyos, potenciálisan irreverzibilis hatás"},
			{"4 - Súlyos", "Halálos/maradandó károsodás, CMR hatás"},
		},

		DBHeaders: []string{
			"Ssz.", "Termék kategória", "Kereskedelmi név", "SDS nyelve", "SDS verziószám", "SDS kiadás dátuma",
			"SDS felülvizsgálat dátuma", "Gyártó/Szállító", "Gyártó címe", "Gyártó tel.", "Gyártó e-mail",
			"Sürgősségi tel.", "UFI kód", "Termék forma", "Felhasználás", "Felhasználási kategória",
			"Anyag/Keverék", "Fő összetevő 1 - név", "Fő összetevő 1 - CAS", "Fő összetevő 1 - EK szám",
			"Fő összetevő 1 - konc. %", "Fő összetevő 1 - CLP osztály", "Fő összetevő 2 - név",
			"Fő összetevő 2 - CAS", "Fő összetevő 2 - EK szám", "Fő összetevő 2 - konc. %",
			"Fő összetevő 2 - CLP osztály", "Fő összetevő 3 - név", "Fő összetevő 3 - CAS",
			"Fő összetevő 3 - konc. %", "Fő összetevő 3 - CLP osztály", "CLP osztályozás (keverék)",
			"GHS piktogram kódok", "Jelzőszó", "H mondatok", "P mondatok", "EUH mondatok", "SVHC anyag",
			"PBT/vPvB", "Halmazállapot", "Szín", "Szag", "Olvadáspont (°C)", "Forráspont (°C)",
			"Lobbanáspont (°C)", "Gyulladási hőm. (°C)", "Sűrűség (g/cm³)", "Vízoldhatóság", "pH",
			"Gőznyomás", "ÁK-érték (mg/m³)", "CK-érték (mg/m³)", "MK-érték (mg/m³)", "DNEL munkás inhaláció",
			"DNEL munkás dermális", "BOELV (EU) mg/m³", "Légzésvédelem", "Kézvédelem", "Szemvédelem",
			"Bőrvédelem", "Műszaki védelem", "Megfelelő oltóanyag", "Nem megfelelő oltóanyag",
			"Veszélyes bomlástermékek", "Tűzoltói védőfelszerelés", "Akut tox. orális LD50",
			"Akut tox. dermális LD50", "Akut tox. inhal. LC50", "Bőrirritáció", "Szemirritáció",
			"Szenzibilizáció", "CMR hatások", "UN szám", "Szállítási megnevezés", "ADR osztály",
			"Csomagolási csop.", "Tengeri szenny.", "EWC kód", "Hulladékkezelés", "Felhasználás helye",
			"Felhasznált mennyiség/év", "Felhasználás gyakorisága", "Expozíció módja",
			"Érintett munkavállalók száma", "Megjegyzés",
		},
		RiskHeaders: []string{
			"Ssz.", "Kereskedelmi név", "Fő veszélyes összetevő", "CLP osztályozás", "H mondatok", "P mondatok",
			"Expozíció módja", "Expozíció gyakorisága", "Expozíció időtartam", "Érintett testrész",
			"Védelem megléte", "Egyéni védőeszköz specifikáció", "Valószínűség (1-4)", "Súlyosság (1-4)",
			"Kockázat (VxS)", "Kockázati szint", "Szükséges intézkedés", "BEM vizsgálat szükséges",
			"Munkáltatói expozíciós nyilvántartás vezetése kötelező", "Intézkedés határideje", "Felelős",
			"Intézkedés utáni valószínűség", "Intézkedés utáni súlyosság", "Maradék kockázat",
			"Maradék kockázati szint", "Értékelő neve", "Értékelés dátuma", "Felülvizsgálat dátuma", "Megjegyzés",
		},
		ExpHeaders: []string{
			"Ssz.", "Munkavállaló neve", "Születési hely és idő", "Anyja neve", "Munkakör", "Munkahely/telephely",
			"Veszélyes anyag kereskedelmi neve", "Veszélyes anyag CAS száma", "Expozíció módja",
			"Napi expozíciós idő (óra)", "Heti expozíciós idő (óra)", "Éves expozíciós idő (óra)",
			"Mért expozíciós koncentráció (mg/m³)", "ÁK/CK határérték (mg/m³)", "Alkalmazott védőeszköz",
			"Munkaegészségügyi vizsgálat", "Nyilvántartás kezdete", "Megjegyzés",
		},
		ExpNote: "Mvt. 63/A. § szerinti nyilvántartás - A munkáltató tölti ki munkavállalónként!",
		ActionHeaders: []string{
			"Ssz.", "Veszélyes anyag", "Kockázati szint", "Szükséges intézkedés", "Felelős", "Határidő",
			"Státusz", "Befejezés dátuma", "Megjegyzés",
		},

		UseLocation:  "Termelés",
		CompanyFills: "Vállalat tölti ki!",
		Employer:     "Munkáltató",
		InProgress:   "Folyamatban",
		ErrorMarker:  "HIBA",

		GenericPPETerms: []string{"védőkesztyű"},

		Keywords: LevelKeywords{
			Acceptable:   []string{"alacsony", "zöld", "elfogadhat"},
			Tolerable:    []string{"közepes", "sárga", "tolerál"},
			Significant:  []string{"magas", "narancs", "jelentős"},
			Unacceptable: []string{"elfogadhatatlan", "piros"},
		},
	},

	"en": {
		Code: "en",
		Name: "English",

		MainTitle:      "HAZARDOUS SUBSTANCES REGISTRY AND CHEMICAL RISK ASSESSMENT",
		PreparedBy:     "Prepared by: AI assistant based on uploaded Safety Data Sheets (SDS/MSDS)",
		PrepDate:       "Preparation date",
		ProcessedCount: "Number of processed safety data sheets",
		LegalBG:        "LEGAL BACKGROUND:",
		LegalRefs: []string{
			"• Regulation (EC) No 1272/2008 (CLP)",
			"• Regulation (EC) No 1907/2006 (REACH)",
			"• Regulation (EU) 2020/878",
		},
		SheetsContent: "WORKSHEET CONTENTS:",
		SheetNames:    [6]string{"Guide", "Reference_Tables", "Hazardous_Substance_DB", "Chemical_Risk_Assessment", "Exposure_Registry", "Action_Plan"},
		SheetDesc: [6]string{
			"Guide - This worksheet",
			"Hazardous_Substance_DB - Complete registry with all SDS data",
			"Chemical_Risk_Assessment - Risk assessment based on 4x4 matrix",
			"Exposure_Registry - Employee exposure registry per legislation",
			"Action_Plan - Risk reduction measures tracking",
			"Reference_Tables - Risk matrix, GHS pictograms, scales",
		},
		Markings:   `MARKINGS: "X" with red background indicates required fields not found in the SDS.`,
		EmptyCells: "Empty cells mean the data is not relevant for the given product.",

		RiskMatrixTitle: "RISK MATRIX (Probability × Severity)",
		Severity:        [4]string{"Severity 1\n(Negligible)", "Severity 2\n(Minor)", "Severity 3\n(Moderate)", "Severity 4\n(Severe)"},
		Probability:     [4]string{"Probability 4 (Very likely)", "Probability 3 (Likely)", "Probability 2 (Possible)", "Probability 1 (Unlikely)"},
		RiskLevelsTitle: "RISK LEVELS:",
		RiskLevels: [4]string{
			"1-2: ACCEPTABLE (green)",
			"3-4: TOLERABLE (yellow) - action required",
			"5-9: SIGNIFICANT (orange) - urgent action",
			"10-16: UNACCEPTABLE (red) - immediate action / stop activity",
		},
		GHSTitle:   "GHS PICTOGRAMS:",
		GHSSymbols: [9]string{"Exploding bomb", "Flame", "Flame over circle", "Gas cylinder", "Corrosion", "Skull & crossbones", "Exclamation mark", "Health hazard", "Environment"},
		GHSDesc: [9]string{
			"Explosives", "Flammable", "Oxidizers", "Gases under pressure",
			"Corrosive to metals; skin corrosion; eye damage", "Acute toxicity (fatal/toxic)",
			"Irritation; sensitization; acute tox. 4; narcosis", "CMR; STOT; aspiration; respiratory sensitization",
			"Aquatic hazard",
		},
		ProbScaleTitle: "PROBABILITY SCALE:",
		ProbScale: [4]ScaleEntry{
			{"1 - Unlikely", "Rare exposure, effective protection, closed system"},
			{"2 - Possible", "Occasional exposure, partial protection"},
			{"3 - Likely", "Regular exposure, insufficient protection"},
			{"4 - Very likely", "Continuous exposure, no protection"},
		},
		SevScaleTitle: "SEVERITY SCALE:",
		SevScale: [4]ScaleEntry{
			{"1 - Negligible", "Mild, reversible (irritation)"},
			{"2 - Minor", "Reversible health damage"},
			{"3 - Moderate", "Severe, potentially irreversible"},
			{"4 - Severe", "Fatal/permanent, CMR effect"},
		},

		DBHeaders: []string{
			"No.", "Product category", "Trade name", "SDS language", "SDS version", "SDS issue date",
			"SDS revision date", "Manufacturer/Supplier", "Address", "Phone", "Email", "Emergency phone",
			"UFI code", "Product form", "Intended use", "Use category", "Substance/Mixture",
			"Component 1 - name", "Component 1 - CAS", "Component 1 - EC", "Component 1 - conc.%",
			"Component 1 - CLP", "Component 2 - name", "Component 2 - CAS", "Component 2 - EC",
			"Component 2 - conc.%", "Component 2 - CLP", "Component 3 - name", "Component 3 - CAS",
			"Component 3 - conc.%", "Component 3 - CLP", "CLP classification (mixture)", "GHS pictograms",
			"Signal word", "H statements", "P statements", "EUH statements", "SVHC", "PBT/vPvB",
			"Physical state", "Colour", "Odour", "Melting pt (°C)", "Boiling pt (°C)", "Flash pt (°C)",
			"Auto-ign. (°C)", "Density (g/cm³)", "Water solubility", "pH", "Vapour pressure",
			"OEL-TWA (mg/m³)", "OEL-STEL (mg/m³)", "OEL-C (mg/m³)", "DNEL inhalation", "DNEL dermal",
			"BOELV (EU) mg/m³", "Respiratory PPE", "Hand protection", "Eye protection", "Skin protection",
			"Engineering controls", "Suitable extinguishing", "Unsuitable extinguishing",
			"Hazardous decomposition", "Firefighter PPE", "Oral LD50", "Dermal LD50", "Inhal. LC50",
			"Skin irritation", "Eye irritation", "Sensitization", "CMR effects", "UN number", "Shipping name",
			"ADR class", "Packing group", "Marine pollutant", "EWC code", "Waste disposal", "Place of use",
			"Annual quantity", "Frequency", "Exposure route", "Workers exposed", "Notes",
		},
		RiskHeaders: []string{
			"No.", "Trade name", "Main hazardous component", "CLP classification", "H statements",
			"P statements", "Exposure route", "Frequency", "Duration", "Affected body parts",
			"Protection present", "PPE specification", "Probability (1-4)", "Severity (1-4)", "Risk (PxS)",
			"Risk level", "Required action", "BEM required", "Exposure registry required", "Deadline",
			"Responsible", "Post-action probability", "Post-action severity", "Residual risk",
			"Residual risk level", "Assessor", "Assessment date", "Review date", "Notes",
		},
		ExpHeaders: []string{
			"No.", "Employee name", "Place/date of birth", "Mother's name", "Job title", "Workplace",
			"Substance trade name", "CAS no.", "Exposure route", "Daily exposure (h)", "Weekly exposure (h)",
			"Annual exposure (h)", "Measured conc. (mg/m³)", "OEL (mg/m³)", "PPE applied",
			"Health examination", "Registry start", "Notes",
		},
		ExpNote: "Exposure registry per legislation - To be completed by employer per employee!",
		ActionHeaders: []string{
			"No.", "Substance", "Risk level", "Required action", "Responsible", "Deadline", "Status",
			"Completion date", "Notes",
		},

		UseLocation:  "Production",
		CompanyFills: "Company to fill!",
		Employer:     "Employer",
		InProgress:   "In progress",
		ErrorMarker:  "ERROR",

		GenericPPETerms: []string{"protective gloves", "suitable gloves"},

		Keywords: LevelKeywords{
			Acceptable:   []string{"acceptable", "green", "low"},
			Tolerable:    []string{"tolerable", "yellow", "medium", "moderate"},
			Significant:  []string{"significant", "orange", "high"},
			Unacceptable: []string{"unacceptable", "red"},
		},
	},

	"de": {
		Code: "de",
		Name: "Deutsch",

		MainTitle:      "GEFAHRSTOFFVERZEICHNIS UND CHEMISCHE GEFÄHRDUNGSBEURTEILUNG",
		PreparedBy:     "Erstellt von: KI-Assistent auf Basis hochgeladener Sicherheitsdatenblätter (SDB)",
		PrepDate:       "Erstellungsdatum",
		ProcessedCount: "Anzahl verarbeiteter Sicherheitsdatenblätter",
		LegalBG:        "RECHTSGRUNDLAGE:",
		LegalRefs: []string{
			"• Verordnung (EG) Nr. 1272/2008 (CLP)",
			"• Verordnung (EG) Nr. 1907/2006 (REACH)",
			"• Verordnung (EU) 2020/878",
		},
		SheetsContent: "INHALT DER ARBEITSBLÄTTER:",
		SheetNames:    [6]string{"Anleitung", "Hilfstabellen", "Gefahrstoff_Datenbank", "Gefährdungsbeurteilung", "Expositionsverzeichnis", "Maßnahmenplan"},
		SheetDesc: [6]string{
			"Anleitung - Dieses Arbeitsblatt",
			"Gefahrstoff_Datenbank - Vollständiges Verzeichnis",
			"Gefährdungsbeurteilung - 4x4-Matrix",
			"Expositionsverzeichnis - Mitarbeiter-Exposition",
			"Maßnahmenplan - Risikominderung",
			"Hilfstabellen - Matrix, GHS, Skalen",
		},
		Markings:   `KENNZEICHNUNGEN: "X" mit rotem Hintergrund = Feld sollte vorhanden sein, fehlt aber im SDB.`,
		EmptyCells: "Leere Zellen = Daten nicht relevant für dieses Produkt.",

		RiskMatrixTitle: "RISIKOMATRIX (Wahrscheinlichkeit × Schweregrad)",
		Severity:        [4]string{"Schweregrad 1\n(Vernachlässigbar)", "Schweregrad 2\n(Gering)", "Schweregrad 3\n(Mittel)", "Schweregrad 4\n(Schwer)"},
		Probability:     [4]string{"Wahrsch. 4 (Sehr wahrscheinlich)", "Wahrsch. 3 (Wahrscheinlich)", "Wahrsch. 2 (Möglich)", "Wahrsch. 1 (Unwahrscheinlich)"},
		RiskLevelsTitle: "RISIKOSTUFEN:",
		RiskLevels: [4]string{
			"1-2: AKZEPTABEL (grün)",
			"3-4: TOLERIERBAR (gelb) - Maßnahmen nötig",
			"5-9: ERHEBLICH (orange) - dringend",
			"10-16: INAKZEPTABEL (rot) - sofort / Stopp",
		},
		GHSTitle:   "GHS-PIKTOGRAMME:",
		GHSSymbols: [9]string{"Explodierende Bombe", "Flamme", "Flamme über Kreis", "Gasflasche", "Ätzwirkung", "Totenkopf", "Ausrufezeichen", "Gesundheitsgefahr", "Umwelt"},
		GHSDesc: [9]string{
			"Explosive Stoffe", "Entzündbar", "Oxidierend", "Gase unter Druck",
			"Korrosiv; Hautverätzung; Augenschädigung", "Akute Toxizität",
			"Reizung; Sensibilisierung; Narkose", "CMR; STOT; Aspiration",
			"Gewässergefährdend",
		},
		ProbScaleTitle: "WAHRSCHEINLICHKEITSSKALA:",
		ProbScale: [4]ScaleEntry{
			{"1 - Unwahrscheinlich", "Selten, wirksamer Schutz"},
			{"2 - Möglich", "Gelegentlich, teilweiser Schutz"},
			{"3 - Wahrscheinlich", "Regelmäßig, unzureichend"},
			{"4 - Sehr wahrscheinlich", "Dauerhaft, kein Schutz"},
		},
		SevScaleTitle: "SCHWEREGRADSKALA:",
		SevScale: [4]ScaleEntry{
			{"1 - Vernachlässigbar", "Leicht, reversibel"},
			{"2 - Gering", "Reversible Schädigung"},
			{"3 - Mittel", "Schwer, potenziell irreversibel"},
			{"4 - Schwer", "Tödlich/bleibend, CMR"},
		},

		DBHeaders: []string{
			"Nr.", "Produktkategorie", "Handelsname", "SDB-Sprache", "SDB-Version", "Ausgabedatum",
			"Überarbeitungsdatum", "Hersteller", "Adresse", "Telefon", "E-Mail", "Notruf", "UFI-Code",
			"Produktform", "Verwendung", "Kategorie", "Stoff/Gemisch", "Bestandteil 1 - Name",
			"Bestandteil 1 - CAS", "Bestandteil 1 - EG", "Bestandteil 1 - Konz.%", "Bestandteil 1 - CLP",
			"Bestandteil 2 - Name", "Bestandteil 2 - CAS", "Bestandteil 2 - EG", "Bestandteil 2 - Konz.%",
			"Bestandteil 2 - CLP", "Bestandteil 3 - Name", "Bestandteil 3 - CAS", "Bestandteil 3 - Konz.%",
			"Bestandteil 3 - CLP", "CLP-Einstufung (Gemisch)", "GHS-Piktogramme", "Signalwort", "H-Sätze",
			"P-Sätze", "EUH-Sätze", "SVHC", "PBT/vPvB", "Aggregatzustand", "Farbe", "Geruch",
			"Schmelzpunkt (°C)", "Siedepunkt (°C)", "Flammpunkt (°C)", "Selbstentzündung (°C)",
			"Dichte (g/cm³)", "Wasserlöslichkeit", "pH", "Dampfdruck", "AGW (mg/m³)", "KZE (mg/m³)",
			"MAK (mg/m³)", "DNEL Inhalation", "DNEL dermal", "BOELV (EU) mg/m³", "Atemschutz", "Handschutz",
			"Augenschutz", "Hautschutz", "Technische Maßnahmen", "Löschmittel geeignet",
			"Löschmittel ungeeignet", "Zersetzungsprodukte", "Feuerwehr-PSA", "Orale LD50", "Dermale LD50",
			"Inhal. LC50", "Hautreizung", "Augenreizung", "Sensibilisierung", "CMR-Wirkungen", "UN-Nr.",
			"Versandbezeichnung", "ADR-Klasse", "Verpackungsgruppe", "Meeresschadstoff", "EAK-Code",
			"Entsorgung", "Verwendungsort", "Jahresmenge", "Häufigkeit", "Expositionsweg", "Exponierte MA",
			"Bemerkungen",
		},
		RiskHeaders: []string{
			"Nr.", "Handelsname", "Hauptbestandteil", "CLP-Einstufung", "H-Sätze", "P-Sätze",
			"Expositionsweg", "Häufigkeit", "Dauer", "Betroffene Körperteile", "Schutz vorhanden",
			"PSA-Spezifikation", "Wahrscheinlichkeit (1-4)", "Schweregrad (1-4)", "Risiko (WxS)",
			"Risikostufe", "Maßnahme", "BEM nötig", "Expositionsverzeichnis Pflicht", "Frist",
			"Verantwortlich", "Wahrsch. danach", "Schwere danach", "Restrisiko", "Restrisikostufe",
			"Beurteiler", "Datum", "Überprüfung", "Bemerkungen",
		},
		ExpHeaders: []string{
			"Nr.", "Mitarbeiter", "Geburtsort/-datum", "Muttername", "Beruf", "Arbeitsplatz", "Gefahrstoff",
			"CAS-Nr.", "Expositionsweg", "Tägliche Exp. (h)", "Wöchentliche Exp. (h)", "Jährliche Exp. (h)",
			"Gemessene Konz. (mg/m³)", "AGW/KZE (mg/m³)", "PSA", "Arb.med. Untersuchung", "Beginn",
			"Bemerkungen",
		},
		ExpNote: "Expositionsverzeichnis - Vom Arbeitgeber pro Mitarbeiter auszufüllen!",
		ActionHeaders: []string{
			"Nr.", "Gefahrstoff", "Risikostufe", "Maßnahme", "Verantwortlich", "Frist", "Status",
			"Abschluss", "Bemerkungen",
		},

		UseLocation:  "Produktion",
		CompanyFills: "Vom Unternehmen!",
		Employer:     "Arbeitgeber",
		InProgress:   "In Bearbeitung",
		ErrorMarker:  "FEHLER",

		GenericPPETerms: []string{"schutzhandschuhe", "geeignete handschuhe"},

		Keywords: LevelKeywords{
			Acceptable:   []string{"akzeptabel", "grün", "niedrig"},
			Tolerable:    []string{"tolerierbar", "gelb", "mittel"},
			Significant:  []string{"erheblich", "orange", "hoch"},
			Unacceptable: []string{"inakzeptabel", "rot"},
		},
	},
}
