package constants

import "time"

// time-of-day boundaries for the colour temperature schedule
const NightStartHour = 18.0
const DayStartHour = 6.0

// webcam warm-up: frames discarded while auto-exposure settles
const WarmUpFrames = 5
const WarmUpFrameInterval = 100 * time.Millisecond

// requested capture mode
const CaptureWidth = 640
const CaptureHeight = 480
const CaptureFPS = 30

const LocationURL = "http://ip-api.com/json"
const WeatherURL = "https://api.openweathermap.org/data/2.5/weather"
