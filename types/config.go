package types

// Configuracion is the single restaurant-wide settings document. It always
// exists: readers fall back to DefaultConfiguracion when the key is absent,
// and partial updates are shallow-merged over the stored document.
type Configuracion struct {
	// Datos del restaurante
	NombreRestaurante    string `json:"nombreRestaurante" yaml:"nombreRestaurante"`
	DireccionRestaurante string `json:"direccionRestaurante,omitempty" yaml:"direccionRestaurante,omitempty"`
	TelefonoRestaurante  string `json:"telefonoRestaurante,omitempty" yaml:"telefonoRestaurante,omitempty"`
	Moneda               string `json:"moneda" yaml:"moneda"`
	IVA                  int    `json:"iva" yaml:"iva"`
	FormatoFecha         string `json:"formatoFecha" yaml:"formatoFecha"`

	// Inventario
	StockMinimoGlobal       int    `json:"stockMinimoGlobal" yaml:"stockMinimoGlobal"`
	AlertaStockBajo         string `json:"alertaStockBajo" yaml:"alertaStockBajo"`
	UnidadMedida            string `json:"unidadMedida" yaml:"unidadMedida"`
	CategoriaPredeterminada string `json:"categoriaPredeterminada,omitempty" yaml:"categoriaPredeterminada,omitempty"`
	ControlCaducidad        bool   `json:"controlCaducidad" yaml:"controlCaducidad"`

	// Notificaciones
	NotificacionesAutomaticas bool   `json:"notificacionesAutomaticas" yaml:"notificacionesAutomaticas"`
	EmailNotificaciones       string `json:"emailNotificaciones,omitempty" yaml:"emailNotificaciones,omitempty"`
	NotifStockBajo            bool   `json:"notifStockBajo" yaml:"notifStockBajo"`
	NotifStockAgotado         bool   `json:"notifStockAgotado" yaml:"notifStockAgotado"`
	NotifProductosCaducados   bool   `json:"notifProductosCaducados" yaml:"notifProductosCaducados"`
	NotifPedidosPendientes    bool   `json:"notifPedidosPendientes" yaml:"notifPedidosPendientes"`
	NotifReportesAutomaticos  bool   `json:"notifReportesAutomaticos" yaml:"notifReportesAutomaticos"`
	NotifActividadUsuarios    bool   `json:"notifActividadUsuarios" yaml:"notifActividadUsuarios"`
	FrecuenciaReportes        string `json:"frecuenciaReportes" yaml:"frecuenciaReportes"`
	HoraNotificaciones        string `json:"horaNotificaciones" yaml:"horaNotificaciones"`

	// Seguridad
	TiempoSesion         int  `json:"tiempoSesion" yaml:"tiempoSesion"`
	IntentosFallidos     int  `json:"intentosFallidos" yaml:"intentosFallidos"`
	RequerirConfirmacion bool `json:"requerirConfirmacion" yaml:"requerirConfirmacion"`
	RegistroActividad    bool `json:"registroActividad" yaml:"registroActividad"`
	BackupAutomatico     bool `json:"backupAutomatico" yaml:"backupAutomatico"`
}

// DefaultConfiguracion returns the documented defaults for every setting.
func DefaultConfiguracion() Configuracion {
	return Configuracion{
		NombreRestaurante:  "Sushi House",
		Moneda:             "MXN",
		IVA:                16,
		FormatoFecha:       "dd/mm/yyyy",
		StockMinimoGlobal:  10,
		AlertaStockBajo:    "si",
		UnidadMedida:       "unidades",
		NotifStockBajo:     true,
		NotifStockAgotado:  true,
		FrecuenciaReportes: "semanal",
		HoraNotificaciones: "09:00",
		TiempoSesion:       30,
		IntentosFallidos:   3,
		RegistroActividad:  true,
	}
}

// ConfiguracionPatch carries a partial configuration update. Nil fields keep
// the stored value.
type ConfiguracionPatch struct {
	NombreRestaurante    *string
	DireccionRestaurante *string
	TelefonoRestaurante  *string
	Moneda               *string
	IVA                  *int
	FormatoFecha         *string

	StockMinimoGlobal       *int
	AlertaStockBajo         *string
	UnidadMedida            *string
	CategoriaPredeterminada *string
	ControlCaducidad        *bool

	NotificacionesAutomaticas *bool
	EmailNotificaciones       *string
	NotifStockBajo            *bool
	NotifStockAgotado         *bool
	NotifProductosCaducados   *bool
	NotifPedidosPendientes    *bool
	NotifReportesAutomaticos  *bool
	NotifActividadUsuarios    *bool
	FrecuenciaReportes        *string
	HoraNotificaciones        *string

	TiempoSesion         *int
	IntentosFallidos     *int
	RequerirConfirmacion *bool
	RegistroActividad    *bool
	BackupAutomatico     *bool
}
