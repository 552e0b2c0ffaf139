package platform

import (
	"sync"
)

// DateTimePickerViewType is the platform view type of the native date/time picker.
const DateTimePickerViewType = "datetimepicker"

// DateTimePickerViewConfig is the prop surface pushed to the native picker.
// Instants are Unix milliseconds; colors are ARGB.
type DateTimePickerViewConfig struct {
	Date                    int64
	MinimumDate             *int64
	MaximumDate             *int64
	Mode                    string
	Display                 string
	Locale                  string
	MinuteInterval          int
	TimeZoneOffsetInMinutes *int
	TextColor               uint32
	AccentColor             uint32
	ThemeVariant            string
	Disabled                bool
	TestID                  string
}

// Params encodes the config as creation/update parameters. Unset optional
// fields are omitted so native keeps its own defaults.
func (c DateTimePickerViewConfig) Params() map[string]any {
	params := map[string]any{
		"date":     c.Date,
		"mode":     c.Mode,
		"display":  c.Display,
		"disabled": c.Disabled,
	}
	if c.MinimumDate != nil {
		params["minimumDate"] = *c.MinimumDate
	}
	if c.MaximumDate != nil {
		params["maximumDate"] = *c.MaximumDate
	}
	if c.Locale != "" {
		params["locale"] = c.Locale
	}
	if c.MinuteInterval != 0 {
		params["minuteInterval"] = c.MinuteInterval
	}
	if c.TimeZoneOffsetInMinutes != nil {
		params["timeZoneOffsetInMinutes"] = *c.TimeZoneOffsetInMinutes
	}
	if c.TextColor != 0 {
		params["textColor"] = c.TextColor
	}
	if c.AccentColor != 0 {
		params["accentColor"] = c.AccentColor
	}
	if c.ThemeVariant != "" {
		params["themeVariant"] = c.ThemeVariant
	}
	if c.TestID != "" {
		params["testID"] = c.TestID
	}
	return params
}

// Equal reports whether two configs describe the same native state. Optional
// fields compare by value.
func (c DateTimePickerViewConfig) Equal(other DateTimePickerViewConfig) bool {
	if !equalPtr(c.MinimumDate, other.MinimumDate) ||
		!equalPtr(c.MaximumDate, other.MaximumDate) ||
		!equalPtr(c.TimeZoneOffsetInMinutes, other.TimeZoneOffsetInMinutes) {
		return false
	}
	c.MinimumDate, other.MinimumDate = nil, nil
	c.MaximumDate, other.MaximumDate = nil, nil
	c.TimeZoneOffsetInMinutes, other.TimeZoneOffsetInMinutes = nil, nil
	return c == other
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// DateTimePickerViewClient receives callbacks from the native picker.
type DateTimePickerViewClient interface {
	// OnDateChanged is called with the raw native event payload when the
	// user commits a selection. The payload carries "timestamp" (Unix
	// milliseconds) when native supplied one, plus any other native fields.
	OnDateChanged(nativeEvent map[string]any)
}

// DateTimePickerView is a platform view hosting UIDatePicker.
type DateTimePickerView struct {
	basePlatformView
	config DateTimePickerViewConfig
	client DateTimePickerViewClient
	mu     sync.RWMutex
}

// NewDateTimePickerView creates a new date/time picker platform view.
func NewDateTimePickerView(viewID int64, config DateTimePickerViewConfig, client DateTimePickerViewClient) *DateTimePickerView {
	return &DateTimePickerView{
		basePlatformView: basePlatformView{
			viewID:   viewID,
			viewType: DateTimePickerViewType,
		},
		config: config,
		client: client,
	}
}

// SetClient sets the callback client for this view.
func (v *DateTimePickerView) SetClient(client DateTimePickerViewClient) {
	v.mu.Lock()
	v.client = client
	v.mu.Unlock()
}

// Create initializes the native view.
func (v *DateTimePickerView) Create(params map[string]any) error {
	return nil
}

// Dispose cleans up the native view.
func (v *DateTimePickerView) Dispose() {
	v.SetClient(nil)
}

// SetNativeDate pushes a date directly onto the native picker, bypassing the
// config diff. The argument is Unix milliseconds.
func (v *DateTimePickerView) SetNativeDate(millis int64) {
	v.mu.Lock()
	v.config.Date = millis
	v.mu.Unlock()

	if _, err := GetPlatformViewRegistry().InvokeViewMethod(v.viewID, "setDate", map[string]any{
		"date": millis,
	}); err != nil {
		GetPlatformViewRegistry().report("platform.DateTimePickerView.SetNativeDate", err)
	}
}

// Config returns the last config pushed to native.
func (v *DateTimePickerView) Config() DateTimePickerViewConfig {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.config
}

// UpdateConfig pushes changed props to native.
func (v *DateTimePickerView) UpdateConfig(config DateTimePickerViewConfig) {
	v.mu.Lock()
	v.config = config
	v.mu.Unlock()

	if _, err := GetPlatformViewRegistry().InvokeViewMethod(v.viewID, "updateConfig", config.Params()); err != nil {
		GetPlatformViewRegistry().report("platform.DateTimePickerView.UpdateConfig", err)
	}
}

func (v *DateTimePickerView) handleViewEvent(method string, args map[string]any) bool {
	if method != "onDateChanged" {
		return false
	}
	nativeEvent := make(map[string]any, len(args))
	for k, val := range args {
		if k == "viewId" {
			continue
		}
		nativeEvent[k] = val
	}
	v.handleDateChanged(nativeEvent)
	return true
}

// handleDateChanged processes change events from native.
func (v *DateTimePickerView) handleDateChanged(nativeEvent map[string]any) {
	if millis, ok := ToInt64(nativeEvent["timestamp"]); ok {
		v.mu.Lock()
		v.config.Date = millis
		v.mu.Unlock()
	}

	v.mu.RLock()
	client := v.client
	v.mu.RUnlock()

	if client != nil {
		client.OnDateChanged(nativeEvent)
	}
}

// dateTimePickerViewFactory creates date/time picker platform views.
type dateTimePickerViewFactory struct{}

func (f *dateTimePickerViewFactory) ViewType() string {
	return DateTimePickerViewType
}

func (f *dateTimePickerViewFactory) Create(viewID int64, params map[string]any) (PlatformView, error) {
	config := DateTimePickerViewConfig{}

	if v, ok := ToInt64(params["date"]); ok {
		config.Date = v
	}
	if v, ok := ToInt64(params["minimumDate"]); ok {
		config.MinimumDate = &v
	}
	if v, ok := ToInt64(params["maximumDate"]); ok {
		config.MaximumDate = &v
	}
	if v, ok := params["mode"].(string); ok {
		config.Mode = v
	}
	if v, ok := params["display"].(string); ok {
		config.Display = v
	}
	if v, ok := params["locale"].(string); ok {
		config.Locale = v
	}
	if v, ok := toInt(params["minuteInterval"]); ok {
		config.MinuteInterval = v
	}
	if v, ok := toInt(params["timeZoneOffsetInMinutes"]); ok {
		config.TimeZoneOffsetInMinutes = &v
	}
	if v, ok := toUint32(params["textColor"]); ok {
		config.TextColor = v
	}
	if v, ok := toUint32(params["accentColor"]); ok {
		config.AccentColor = v
	}
	if v, ok := params["themeVariant"].(string); ok {
		config.ThemeVariant = v
	}
	if v, ok := params["disabled"].(bool); ok {
		config.Disabled = v
	}
	if v, ok := params["testID"].(string); ok {
		config.TestID = v
	}

	// The client is set later by the widget.
	return NewDateTimePickerView(viewID, config, nil), nil
}

// RegisterDateTimePickerViewFactory registers the date/time picker view factory.
func RegisterDateTimePickerViewFactory() {
	GetPlatformViewRegistry().RegisterFactory(&dateTimePickerViewFactory{})
}

func init() {
	RegisterDateTimePickerViewFactory()
}
