package entity

import "strings"

// Choice is a code/label pair of a closed enumeration.
type Choice struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Municipality is a municipality of the state of Guanajuato.
type Municipality string

const (
	MunicipalityAbasolo                   Municipality = "ABASOLO"
	MunicipalityAcambaro                  Municipality = "ACAMBARO"
	MunicipalityAllende                   Municipality = "ALLENDE"
	MunicipalityApaseoElAlto              Municipality = "APASEO_EL_ALTO"
	MunicipalityApaseoElGrande            Municipality = "APASEO_EL_GRANDE"
	MunicipalityAtarjea                   Municipality = "ATARJEA"
	MunicipalityCelaya                    Municipality = "CELAYA"
	MunicipalityManuelDoblado             Municipality = "MANUEL_DOBLADO"
	MunicipalityComonfort                 Municipality = "COMONFORT"
	MunicipalityCoroneo                   Municipality = "CORONEO"
	MunicipalityCortazar                  Municipality = "CORTAZAR"
	MunicipalityCueramaro                 Municipality = "CUERAMARO"
	MunicipalityDoctorMora                Municipality = "DOCTOR_MORA"
	MunicipalityDoloresHidalgo            Municipality = "DOLORES_HIDALGO"
	MunicipalityGuanajuato                Municipality = "GUANAJUATO"
	MunicipalityHuanimaro                 Municipality = "HUANIMARO"
	MunicipalityIrapuato                  Municipality = "IRAPUATO"
	MunicipalityJaralDelProgreso          Municipality = "JARAL_DEL_PROGRESO"
	MunicipalityJerecuaro                 Municipality = "JERECUARO"
	MunicipalityLeon                      Municipality = "LEON"
	MunicipalityMoroleon                  Municipality = "MOROLEON"
	MunicipalityOcampo                    Municipality = "OCAMPO"
	MunicipalityOjitosDeJauregui          Municipality = "OJITOS_DE_JAUREGUI"
	MunicipalityPenjamo                   Municipality = "PENJAMO"
	MunicipalityPuebloNuevo               Municipality = "PUEBLO_NUEVO"
	MunicipalityPurisimaDelRincon         Municipality = "PURISIMA_DEL_RINCON"
	MunicipalityRomita                    Municipality = "ROMITA"
	MunicipalitySalamanca                 Municipality = "SALAMANCA"
	MunicipalitySalvatierra               Municipality = "SALVATIERRA"
	MunicipalitySanDiegoDeLaUnion         Municipality = "SAN_DIEGO_DE_LA_UNION"
	MunicipalitySanFelipe                 Municipality = "SAN_FELIPE"
	MunicipalitySanFranciscoDelRincon     Municipality = "SAN_FRANCISCO_DEL_RINCON"
	MunicipalitySanJoseIturbide           Municipality = "SAN_JOSE_ITURBIDE"
	MunicipalitySanLuisDeLaPaz            Municipality = "SAN_LUIS_DE_LA_PAZ"
	MunicipalitySantaCatarina             Municipality = "SANTA_CATARINA"
	MunicipalitySantaCruzDeJuventinoRosas Municipality = "SANTA_CRUZ_DE_JUVENTINO_ROSAS"
	MunicipalitySantiagoMaravatio         Municipality = "SANTIAGO_MARAVATIO"
	MunicipalitySilao                     Municipality = "SILAO"
	MunicipalityTarandacuao               Municipality = "TARANDACUAO"
	MunicipalityTarimoro                  Municipality = "TARIMORO"
	MunicipalityTierraBlanca              Municipality = "TIERRA_BLANCA"
	MunicipalityUriangato                 Municipality = "URIANGATO"
	MunicipalityValleDeSantiago           Municipality = "VALLE_DE_SANTIAGO"
	MunicipalityVictoria                  Municipality = "VICTORIA"
	MunicipalityVillagran                 Municipality = "VILLAGRAN"
	MunicipalityXichu                     Municipality = "XICHU"
	MunicipalityYuriria                   Municipality = "YURIRIA"
)

var municipalityChoices = []Choice{
	{Code: string(MunicipalityAbasolo), Label: "Abasolo"},
	{Code: string(MunicipalityAcambaro), Label: "Acámbaro"},
	{Code: string(MunicipalityAllende), Label: "San Miguel de Allende"},
	{Code: string(MunicipalityApaseoElAlto), Label: "Apaseo el Alto"},
	{Code: string(MunicipalityApaseoElGrande), Label: "Apaseo el Grande"},
	{Code: string(MunicipalityAtarjea), Label: "Atarjea"},
	{Code: string(MunicipalityCelaya), Label: "Celaya"},
	{Code: string(MunicipalityManuelDoblado), Label: "Manuel Doblado"},
	{Code: string(MunicipalityComonfort), Label: "Comonfort"},
	{Code: string(MunicipalityCoroneo), Label: "Coroneo"},
	{Code: string(MunicipalityCortazar), Label: "Cortazar"},
	{Code: string(MunicipalityCueramaro), Label: "Cuerámaro"},
	{Code: string(MunicipalityDoctorMora), Label: "Doctor Mora"},
	{Code: string(MunicipalityDoloresHidalgo), Label: "Dolores Hidalgo Cuna de la Independencia Nacional"},
	{Code: string(MunicipalityGuanajuato), Label: "Guanajuato"},
	{Code: string(MunicipalityHuanimaro), Label: "Huanímaro"},
	{Code: string(MunicipalityIrapuato), Label: "Irapuato"},
	{Code: string(MunicipalityJaralDelProgreso), Label: "Jaral del Progreso"},
	{Code: string(MunicipalityJerecuaro), Label: "Jerécuaro"},
	{Code: string(MunicipalityLeon), Label: "León"},
	{Code: string(MunicipalityMoroleon), Label: "Moroleón"},
	{Code: string(MunicipalityOcampo), Label: "Ocampo"},
	{Code: string(MunicipalityOjitosDeJauregui), Label: "Ojo de Agua de Latillas"},
	{Code: string(MunicipalityPenjamo), Label: "Pénjamo"},
	{Code: string(MunicipalityPuebloNuevo), Label: "Pueblo Nuevo"},
	{Code: string(MunicipalityPurisimaDelRincon), Label: "Purísima del Rincón"},
	{Code: string(MunicipalityRomita), Label: "Romita"},
	{Code: string(MunicipalitySalamanca), Label: "Salamanca"},
	{Code: string(MunicipalitySalvatierra), Label: "Salvatierra"},
	{Code: string(MunicipalitySanDiegoDeLaUnion), Label: "San Diego de la Unión"},
	{Code: string(MunicipalitySanFelipe), Label: "San Felipe"},
	{Code: string(MunicipalitySanFranciscoDelRincon), Label: "San Francisco del Rincón"},
	{Code: string(MunicipalitySanJoseIturbide), Label: "San José Iturbide"},
	{Code: string(MunicipalitySanLuisDeLaPaz), Label: "San Luis de la Paz"},
	{Code: string(MunicipalitySantaCatarina), Label: "Santa Catarina"},
	{Code: string(MunicipalitySantaCruzDeJuventinoRosas), Label: "Santa Cruz de Juventino Rosas"},
	{Code: string(MunicipalitySantiagoMaravatio), Label: "Santiago Maravatío"},
	{Code: string(MunicipalitySilao), Label: "Silao de la Victoria"},
	{Code: string(MunicipalityTarandacuao), Label: "Tarandacuao"},
	{Code: string(MunicipalityTarimoro), Label: "Tarimoro"},
	{Code: string(MunicipalityTierraBlanca), Label: "Tierra Blanca"},
	{Code: string(MunicipalityUriangato), Label: "Uriangato"},
	{Code: string(MunicipalityValleDeSantiago), Label: "Valle de Santiago"},
	{Code: string(MunicipalityVictoria), Label: "Victoria"},
	{Code: string(MunicipalityVillagran), Label: "Villagrán"},
	{Code: string(MunicipalityXichu), Label: "Xichú"},
	{Code: string(MunicipalityYuriria), Label: "Yuriria"},
}

var municipalityLabels = labelIndex(municipalityChoices)

// IsValid reports whether v is a known Municipality code.
func (v Municipality) IsValid() bool {
	_, ok := municipalityLabels[string(v)]

	return ok
}

// Label returns the display label, or the raw code when unknown.
func (v Municipality) Label() string {
	if label, ok := municipalityLabels[string(v)]; ok {
		return label
	}

	return string(v)
}

// ParseMunicipality resolves a code case-insensitively.
func ParseMunicipality(s string) (Municipality, bool) {
	v := Municipality(strings.ToUpper(strings.TrimSpace(s)))

	return v, v.IsValid()
}

// MunicipalityChoices returns all Municipality code/label pairs in display order.
func MunicipalityChoices() []Choice {
	return append([]Choice(nil), municipalityChoices...)
}

// LocationType is the kind of premises a business operates from.
type LocationType string

const (
	LocationTypePlazaTextil LocationType = "PLAZA_TEXTIL"
	LocationTypeTianguis    LocationType = "TIANGUIS"
	LocationTypeMercado     LocationType = "MERCADO"
	LocationTypeLocalCalle  LocationType = "LOCAL_CALLE"
	LocationTypeOnline      LocationType = "ONLINE"
	LocationTypeOtro        LocationType = "OTRO"
)

var locationTypeChoices = []Choice{
	{Code: string(LocationTypePlazaTextil), Label: "Plaza Textil"},
	{Code: string(LocationTypeTianguis), Label: "Tianguis"},
	{Code: string(LocationTypeMercado), Label: "Mercado"},
	{Code: string(LocationTypeLocalCalle), Label: "Local a la Calle"},
	{Code: string(LocationTypeOnline), Label: "Solo Online (sin ubicación física)"},
	{Code: string(LocationTypeOtro), Label: "Otro"},
}

var locationTypeLabels = labelIndex(locationTypeChoices)

// IsValid reports whether v is a known LocationType code.
func (v LocationType) IsValid() bool {
	_, ok := locationTypeLabels[string(v)]

	return ok
}

// Label returns the display label, or the raw code when unknown.
func (v LocationType) Label() string {
	if label, ok := locationTypeLabels[string(v)]; ok {
		return label
	}

	return string(v)
}

// ParseLocationType resolves a code case-insensitively.
func ParseLocationType(s string) (LocationType, bool) {
	v := LocationType(strings.ToUpper(strings.TrimSpace(s)))

	return v, v.IsValid()
}

// LocationTypeChoices returns all LocationType code/label pairs in display order.
func LocationTypeChoices() []Choice {
	return append([]Choice(nil), locationTypeChoices...)
}

// BusinessType is the category of a business.
type BusinessType string

const (
	BusinessTypeRopaMayoreoMenudeo     BusinessType = "ROPA_MAYOREO_MENUDEO"
	BusinessTypeTalleresConfeccion     BusinessType = "TALLERES_CONFECCION"
	BusinessTypeTelasInsumos           BusinessType = "TELAS_INSUMOS"
	BusinessTypeMercerias              BusinessType = "MERCERIAS"
	BusinessTypeCalzado                BusinessType = "CALZADO"
	BusinessTypeAbarrotes              BusinessType = "ABARROTES"
	BusinessTypeTortillerias           BusinessType = "TORTILLERIAS"
	BusinessTypeCarnicerias            BusinessType = "CARNICERIAS"
	BusinessTypeFruteriasVerdulerias   BusinessType = "FRUTERIAS_VERDULERIAS"
	BusinessTypePanaderias             BusinessType = "PANADERIAS"
	BusinessTypeFondasCocinas          BusinessType = "FONDAS_COCINAS"
	BusinessTypeTaqueriasAntojitos     BusinessType = "TAQUERIAS_ANTOJITOS"
	BusinessTypeEsteticas              BusinessType = "ESTETICAS"
	BusinessTypePeluqueriasBarberias   BusinessType = "PELUQUERIAS_BARBERIAS"
	BusinessTypeFarmacias              BusinessType = "FARMACIAS"
	BusinessTypePapeleriasCiber        BusinessType = "PAPELERIAS_CIBER"
	BusinessTypeTlapaleriasFerreterias BusinessType = "TLAPALERIAS_FERRETERIAS"
	BusinessTypeRefaccionarias         BusinessType = "REFACCIONARIAS"
	BusinessTypeTalleresMecanicos      BusinessType = "TALLERES_MECANICOS"
	BusinessTypeVulcanizadoras         BusinessType = "VULCANIZADORAS"
	BusinessTypeVeterinarias           BusinessType = "VETERINARIAS"
	BusinessTypeFloristerias           BusinessType = "FLORISTERIAS"
	BusinessTypeJoyerias               BusinessType = "JOYERIAS"
	BusinessTypeTiendasRegalos         BusinessType = "TIENDAS_REGALOS"
	BusinessTypeLavanderias            BusinessType = "LAVANDERIAS"
	BusinessTypeMueblerias             BusinessType = "MUEBLERIAS"
	BusinessTypeTiendasElectronica     BusinessType = "TIENDAS_ELECTRONICA"
	BusinessTypeDulcerias              BusinessType = "DULCERIAS"
	BusinessTypeAgenciasViajes         BusinessType = "AGENCIAS_VIAJES"
	BusinessTypeZapaterias             BusinessType = "ZAPATERIAS"
	BusinessTypeArtesanias             BusinessType = "ARTESANIAS"
	BusinessTypeServiciosGenerales     BusinessType = "SERVICIOS_GENERALES"
	BusinessTypeProductosVarios        BusinessType = "PRODUCTOS_VARIOS"
	BusinessTypeOtros                  BusinessType = "OTROS"
)

var businessTypeChoices = []Choice{
	{Code: string(BusinessTypeRopaMayoreoMenudeo), Label: "Tiendas de Ropa al Mayoreo/Menudeo"},
	{Code: string(BusinessTypeTalleresConfeccion), Label: "Talleres de Confección"},
	{Code: string(BusinessTypeTelasInsumos), Label: "Tiendas de Telas e Insumos Textiles"},
	{Code: string(BusinessTypeMercerias), Label: "Mercerías"},
	{Code: string(BusinessTypeCalzado), Label: "Calzado"},
	{Code: string(BusinessTypeAbarrotes), Label: "Abarrotes"},
	{Code: string(BusinessTypeTortillerias), Label: "Tortillerías"},
	{Code: string(BusinessTypeCarnicerias), Label: "Carnicerías"},
	{Code: string(BusinessTypeFruteriasVerdulerias), Label: "Fruterías y Verdulerías"},
	{Code: string(BusinessTypePanaderias), Label: "Panaderías"},
	{Code: string(BusinessTypeFondasCocinas), Label: "Fondas/Cocinas Económicas"},
	{Code: string(BusinessTypeTaqueriasAntojitos), Label: "Taquerías/Antojitos"},
	{Code: string(BusinessTypeEsteticas), Label: "Estéticas"},
	{Code: string(BusinessTypePeluqueriasBarberias), Label: "Peluquerías/Barberías"},
	{Code: string(BusinessTypeFarmacias), Label: "Farmacias"},
	{Code: string(BusinessTypePapeleriasCiber), Label: "Papelerías/Ciber-cafés"},
	{Code: string(BusinessTypeTlapaleriasFerreterias), Label: "Tlapalerías/Ferreterías"},
	{Code: string(BusinessTypeRefaccionarias), Label: "Refaccionarias"},
	{Code: string(BusinessTypeTalleresMecanicos), Label: "Talleres Mecánicos"},
	{Code: string(BusinessTypeVulcanizadoras), Label: "Vulcanizadoras"},
	{Code: string(BusinessTypeVeterinarias), Label: "Veterinarias"},
	{Code: string(BusinessTypeFloristerias), Label: "Floristerías"},
	{Code: string(BusinessTypeJoyerias), Label: "Joyerías"},
	{Code: string(BusinessTypeTiendasRegalos), Label: "Tiendas de Regalos"},
	{Code: string(BusinessTypeLavanderias), Label: "Lavanderías"},
	{Code: string(BusinessTypeMueblerias), Label: "Mueblerías"},
	{Code: string(BusinessTypeTiendasElectronica), Label: "Tiendas de Electrónica"},
	{Code: string(BusinessTypeDulcerias), Label: "Dulcerías"},
	{Code: string(BusinessTypeAgenciasViajes), Label: "Agencias de Viajes"},
	{Code: string(BusinessTypeZapaterias), Label: "Zapaterías"},
	{Code: string(BusinessTypeArtesanias), Label: "Artesanías y Productos Típicos"},
	{Code: string(BusinessTypeServiciosGenerales), Label: "Servicios Generales (ej. reparaciones, cerrajería)"},
	{Code: string(BusinessTypeProductosVarios), Label: "Productos Varios / Chácharas"},
	{Code: string(BusinessTypeOtros), Label: "Otros"},
}

var businessTypeLabels = labelIndex(businessTypeChoices)

// IsValid reports whether v is a known BusinessType code.
func (v BusinessType) IsValid() bool {
	_, ok := businessTypeLabels[string(v)]

	return ok
}

// Label returns the display label, or the raw code when unknown.
func (v BusinessType) Label() string {
	if label, ok := businessTypeLabels[string(v)]; ok {
		return label
	}

	return string(v)
}

// ParseBusinessType resolves a code case-insensitively.
func ParseBusinessType(s string) (BusinessType, bool) {
	v := BusinessType(strings.ToUpper(strings.TrimSpace(s)))

	return v, v.IsValid()
}

// BusinessTypeChoices returns all BusinessType code/label pairs in display order.
func BusinessTypeChoices() []Choice {
	return append([]Choice(nil), businessTypeChoices...)
}

func labelIndex(choices []Choice) map[string]string {
	index := make(map[string]string, len(choices))
	for _, c := range choices {
		index[c.Code] = c.Label
	}

	return index
}
